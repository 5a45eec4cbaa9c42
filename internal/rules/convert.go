package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	assetPrefix    = "assets/"
	libAssetPrefix = "lib/assets/"
)

// convertPathToSymbol turns a raw asset path into the generated
// symbol-access expression:
//
//	assets/icons/home_icon.svg  → Assets.icons.homeIcon
//	lib/assets/images/logo.png  → Assets.lib.assets.images.logo
//
// Unrecognized prefixes and degenerate remainders fail the conversion.
// Deterministic, no I/O.
func convertPathToSymbol(rawPath string) (string, bool) {
	p := strings.TrimSpace(rawPath)

	var libPrefixed bool
	var rest string
	switch {
	case strings.HasPrefix(p, libAssetPrefix):
		libPrefixed = true
		rest = p[len(libAssetPrefix):]
	case strings.HasPrefix(p, assetPrefix):
		rest = p[len(assetPrefix):]
	default:
		return "", false
	}

	segs := make([]string, 0, 4)
	for _, s := range strings.Split(rest, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return "", false
	}

	base := segs[len(segs)-1]
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	if base == "" {
		return "", false
	}

	out := make([]string, 0, len(segs)+2)
	if libPrefixed {
		out = append(out, "lib", "assets")
	}
	for _, s := range segs[:len(segs)-1] {
		out = append(out, snakeToCamel(s))
	}
	out = append(out, snakeToCamel(base))

	return "Assets." + strings.Join(out, "."), true
}

// snakeToCamel converts one path segment: the first underscore-separated
// part stays as is, every following part gets its first rune uppercased.
func snakeToCamel(s string) string {
	var b strings.Builder
	first := true
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		if first {
			b.WriteString(part)
			first = false
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}
