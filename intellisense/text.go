package intellisense

import "strings"

// Cross-reference markup yuidoc leaves in descriptions:
// {{#crossLink "EntityManager"}}{{/crossLink}}. Only the delimiters are removed.
const (
	crossLinkOpen  = "{{#crossLink"
	crossLinkClose = "}}{{/crossLink}}"
)

// MultilineText is a description kept line by line
type MultilineText struct {
	Lines []string `json:"lines"`
}

// String joins the lines back with newlines
func (m *MultilineText) String() string {
	if m == nil {
		return ""
	}
	return strings.Join(m.Lines, "\n")
}

// NormalizeMultiline cleans a description and splits it into lines.
// Returns nil for empty text.
func NormalizeMultiline(text string) *MultilineText {
	if text == "" {
		return nil
	}
	return &MultilineText{Lines: strings.Split(cleanDescription(text), "\n")}
}

// NormalizeSingleLine cleans a description and collapses it onto one line.
// Returns "" for empty text.
func NormalizeSingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Split(cleanDescription(text), "\n"), " ")
}

// cleanDescription keeps the first paragraph, swaps double quotes for single
// quotes and drops crossLink delimiters.
func cleanDescription(text string) string {
	text = firstParagraph(text)
	text = strings.ReplaceAll(text, `"`, "'")
	text = strings.ReplaceAll(text, crossLinkOpen, "")
	return strings.ReplaceAll(text, crossLinkClose, "")
}

func firstParagraph(text string) string {
	if ix := strings.Index(text, "\n\n"); ix != -1 {
		return text[:ix]
	}
	return text
}
