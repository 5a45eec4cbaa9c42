package rules

import (
	"testing"
)

func TestIsAssetPath(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "assets/icons/home.svg", want: true},
		{value: "lib/assets/images/logo.png", want: true},
		{value: "  assets/padded.png  ", want: true},
		{value: "images/logo.png", want: false},
		{value: "https://example.com/assets/x.png", want: false},
		{value: "", want: false},
	}
	for _, tt := range tests {
		if got := isAssetPath(tt.value); got != tt.want {
			t.Errorf("isAssetPath(%q): got %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestHandlerRegistry(t *testing.T) {
	tests := []struct {
		name       string
		class      string
		ctor       string
		registered bool
		handles    bool
		path       string
		suffix     string
	}{
		{
			name:       "Image.asset with raster path",
			class:      "Image",
			ctor:       "asset",
			registered: true,
			handles:    true,
			path:       "assets/images/logo.png",
			suffix:     "image",
		},
		{
			name:       "Image.asset with svg path",
			class:      "Image",
			ctor:       "asset",
			registered: true,
			handles:    true,
			path:       "assets/icons/home.SVG",
			suffix:     "svg",
		},
		{
			name:       "Image.network not handled",
			class:      "Image",
			ctor:       "network",
			registered: true,
			handles:    false,
		},
		{
			name:       "SvgPicture.asset",
			class:      "SvgPicture",
			ctor:       "asset",
			registered: true,
			handles:    true,
			path:       "assets/icons/home.svg",
			suffix:     "svg",
		},
		{
			name:       "SvgPicture.network not handled",
			class:      "SvgPicture",
			ctor:       "network",
			registered: true,
			handles:    false,
		},
		{
			name:       "AssetImage unnamed constructor",
			class:      "AssetImage",
			ctor:       "",
			registered: true,
			handles:    true,
			path:       "assets/images/bg.jpg",
			suffix:     "provider",
		},
		{
			name:       "unknown class",
			class:      "Container",
			registered: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := handlerFor(tt.class)
			if ok != tt.registered {
				t.Fatalf("registered: got %v, want %v", ok, tt.registered)
			}
			if !ok {
				return
			}
			if got := h.canHandle(tt.ctor); got != tt.handles {
				t.Fatalf("canHandle(%q): got %v, want %v", tt.ctor, got, tt.handles)
			}
			if tt.handles {
				if got := h.suffix(tt.path); got != tt.suffix {
					t.Errorf("suffix(%q): got %q, want %q", tt.path, got, tt.suffix)
				}
			}
		})
	}
}
