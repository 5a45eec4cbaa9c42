package rules

import (
	"testing"
)

func TestLooksTechnical(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "https url", value: "https://example.com/page", want: true},
		{name: "custom scheme", value: "myapp://deeplink/home", want: true},
		{name: "email", value: "support@example.com", want: true},
		{name: "hex color short", value: "#fff", want: true},
		{name: "hex color argb", value: "#FF00FF88", want: true},
		{name: "bare number", value: "1024", want: true},
		{name: "number with unit", value: "16px", want: true},
		{name: "decimal with unit", value: "1.5 em", want: true},
		{name: "constant case", value: "API_BASE_URL", want: true},
		{name: "snake case", value: "user_profile_page", want: true},
		{name: "absolute path", value: "/usr/local/share/fonts", want: true},
		{name: "relative path", value: "assets/icons/home_icon.svg", want: true},
		{name: "dotted pair", value: "profile.title", want: true},
		{name: "filename", value: "report.pdf", want: true},
		{name: "mixed token", value: "item2", want: true},
		{name: "kebab token", value: "btn-primary", want: true},
		{name: "padded technical value", value: "  API_BASE_URL  ", want: true},

		{name: "plain sentence", value: "Welcome to the app", want: false},
		{name: "single word", value: "Welcome", want: false},
		{name: "sentence with digits", value: "You have 3 new messages", want: false},
		{name: "apostrophe word", value: "don't", want: false},
		{name: "empty", value: "", want: false},
		{name: "whitespace only", value: "   ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksTechnical(tt.value); got != tt.want {
				t.Errorf("looksTechnical(%q): got %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
