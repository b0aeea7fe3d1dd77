package featuredata

import (
	"encoding/json"
	"strings"
)

// richNode is the subset of the editor's JSON tree needed for plain text.
type richNode struct {
	Type     string     `json:"type"`
	Text     string     `json:"text,omitempty"`
	URL      string     `json:"url,omitempty"`
	ListType string     `json:"listType,omitempty"`
	Checked  bool       `json:"checked,omitempty"`
	Children []richNode `json:"children,omitempty"`
}

type richRoot struct {
	Root richNode `json:"root"`
}

// PlainText flattens rich-editor JSON note content to plain text. Anything
// that is not editor JSON is returned unchanged.
func PlainText(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, `{"root":`) {
		return content
	}

	var root richRoot
	if err := json.Unmarshal([]byte(trimmed), &root); err != nil {
		return content
	}

	var sb strings.Builder
	writeRich(root.Root, &sb, 0)
	return strings.TrimSpace(sb.String())
}

func writeRich(node richNode, sb *strings.Builder, depth int) {
	switch node.Type {
	case "text":
		sb.WriteString(node.Text)
	case "linebreak":
		sb.WriteString("\n")
	case "paragraph", "heading", "quote":
		for _, child := range node.Children {
			writeRich(child, sb, depth)
		}
		sb.WriteString("\n")
	case "list":
		for _, child := range node.Children {
			if child.Type != "listitem" {
				continue
			}
			sb.WriteString(strings.Repeat("  ", depth))
			switch {
			case node.ListType == "check" && child.Checked:
				sb.WriteString("[x] ")
			case node.ListType == "check":
				sb.WriteString("[ ] ")
			default:
				sb.WriteString("- ")
			}
			for _, grand := range child.Children {
				writeRich(grand, sb, depth+1)
			}
			sb.WriteString("\n")
		}
	case "link":
		for _, child := range node.Children {
			writeRich(child, sb, depth)
		}
		if node.URL != "" {
			sb.WriteString(" (" + node.URL + ")")
		}
	default:
		for _, child := range node.Children {
			writeRich(child, sb, depth)
		}
	}
}
