package render

import (
	"strings"

	"golang.org/x/net/html"
)

// hasTag reports whether the fragment contains any markup tag. It is a
// tokenizing scan, not a full parse; provider fragments are shallow.
func hasTag(fragment string) bool {
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			return true
		}
	}
}

// firstImgSrc returns the src of the first <img> tag in the fragment.
func firstImgSrc(fragment string) (string, bool) {
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return "", false
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "img" {
				continue
			}
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) == "src" {
					return string(val), true
				}
			}
		}
	}
}

// FirstImageSource scans rendered content for the first image element
// and returns its src. Used for the representative-image fallback.
func FirstImageSource(content string) (string, bool) {
	return firstImgSrc(content)
}

// firstTagName returns the name of the first tag in the chunk.
func firstTagName(chunk string) string {
	z := html.NewTokenizer(strings.NewReader(chunk))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			return string(name)
		}
	}
}
