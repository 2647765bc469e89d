package render

import "strings"

// GutenbergConverter wraps flat HTML chunks in editor block delimiters,
// standing in for the block converter the content store uses.
type GutenbergConverter struct{}

func (GutenbergConverter) Convert(content string) string {
	chunks := strings.Split(content, "\n\n")
	out := make([]string, 0, len(chunks))

	for _, chunk := range chunks {
		trimmed := strings.TrimSpace(chunk)
		if trimmed == "" {
			continue
		}
		out = append(out, wrapBlock(trimmed))
	}

	return strings.Join(out, "\n\n")
}

func wrapBlock(chunk string) string {
	var name string
	switch tag := firstTagName(chunk); tag {
	case "p":
		name = "paragraph"
	case "img":
		name = "image"
	case "h1", "h2", "h3", "h4", "h5", "h6":
		name = "heading"
	case "ul", "ol":
		name = "list"
	case "":
		// Bare text, treat as a paragraph.
		chunk = "<p>" + chunk + "</p>"
		name = "paragraph"
	default:
		name = "html"
	}

	return "<!-- wp:" + name + " -->\n" + chunk + "\n<!-- /wp:" + name + " -->"
}
