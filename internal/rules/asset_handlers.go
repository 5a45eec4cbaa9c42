package rules

import (
	"path"
	"strings"
)

// isAssetPath reports whether a literal value denotes a bundled resource.
func isAssetPath(value string) bool {
	v := strings.TrimSpace(value)
	return strings.HasPrefix(v, "assets/") || strings.HasPrefix(v, "lib/assets/")
}

// assetHandler maps one asset-consuming constructor shape to its generated
// accessor suffix.
type assetHandler interface {
	// canHandle decides whether the named-constructor subname belongs to
	// this handler ("" for the unnamed constructor).
	canHandle(ctor string) bool
	// suffix produces the accessor suffix for the given asset path value.
	suffix(pathValue string) string
}

// imageAssetHandler covers Image.asset. The generated accessor depends on
// the file type behind the path.
type imageAssetHandler struct{}

func (imageAssetHandler) canHandle(ctor string) bool { return ctor == "asset" }

func (imageAssetHandler) suffix(pathValue string) string {
	if strings.ToLower(path.Ext(pathValue)) == ".svg" {
		return "svg"
	}
	return "image"
}

// svgPictureAssetHandler covers SvgPicture.asset.
type svgPictureAssetHandler struct{}

func (svgPictureAssetHandler) canHandle(ctor string) bool { return ctor == "asset" }

func (svgPictureAssetHandler) suffix(string) string { return "svg" }

// assetImageHandler covers AssetImage, which has no named constructors.
type assetImageHandler struct{}

func (assetImageHandler) canHandle(string) bool { return true }

func (assetImageHandler) suffix(string) string { return "provider" }

var assetHandlers = map[string]assetHandler{
	"Image":      imageAssetHandler{},
	"SvgPicture": svgPictureAssetHandler{},
	"AssetImage": assetImageHandler{},
}

// handlerFor resolves the handler for a constructed class name.
func handlerFor(class string) (assetHandler, bool) {
	h, ok := assetHandlers[class]
	return h, ok
}
