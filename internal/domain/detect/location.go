package detect

import (
	"strings"
	"unicode/utf8"

	"github.com/smellhound/smellhound/internal/domain"
)

// snippetWindow is the number of characters kept on each side of a generic
// pattern match.
const snippetWindow = 50

// resolveLocation maps a byte offset into code to a 1-based (line, column)
// pair. Columns advance once per codepoint, so multi-byte characters count
// as a single column unit.
func resolveLocation(code string, pos int) domain.Location {
	line, col := 1, 1
	for i, r := range code {
		if i >= pos {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return domain.Location{Line: line, Column: col}
}

// rawEnclosingLine returns the full line containing pos, untrimmed. The
// leading whitespace matters to the assignment scanner's indentation signal.
func rawEnclosingLine(code string, pos int) string {
	start := strings.LastIndexByte(code[:pos], '\n') + 1
	end := strings.IndexByte(code[pos:], '\n')
	if end < 0 {
		end = len(code)
	} else {
		end += pos
	}
	return code[start:end]
}

// enclosingLine returns the full line containing pos, trimmed of surrounding
// whitespace. Literal-scanner snippets are never length-truncated beyond
// what the line naturally contains.
func enclosingLine(code string, pos int) string {
	return strings.TrimSpace(rawEnclosingLine(code, pos))
}

// extractWindow returns up to snippetWindow characters before the match
// start and after the match end, clipped to the buffer, then truncated to
// maxLen characters with an ellipsis marker if still longer.
func extractWindow(code string, start, end, maxLen int) string {
	from := start
	for i := 0; i < snippetWindow && from > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(code[:from])
		from -= size
	}
	to := end
	for i := 0; i < snippetWindow && to < len(code); i++ {
		_, size := utf8.DecodeRuneInString(code[to:])
		to += size
	}

	snippet := code[from:to]
	if utf8.RuneCountInString(snippet) > maxLen {
		runes := []rune(snippet)
		return string(runes[:maxLen]) + "..."
	}
	return snippet
}
