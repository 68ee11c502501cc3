// Package textsplit cuts long replies into message-sized fragments.
package textsplit

// DefaultLimit matches the outbound message size cap of the chat transport.
const DefaultLimit = 3800

// Split cuts text into fragments of at most limit bytes, in order.
// Concatenating the fragments reproduces text exactly; splitting is purely
// length based and may fall mid-word. The result always has at least one
// element, even for empty input. A non-positive limit falls back to
// DefaultLimit.
func Split(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	parts := make([]string, 0, len(text)/limit+1)
	for len(text) > limit {
		parts = append(parts, text[:limit])
		text = text[limit:]
	}
	return append(parts, text)
}
