package latex

import "strings"

// Escape neutralizes every character with special meaning to LaTeX in a
// single pass. The replacements themselves contain special characters,
// so the function must never be run over its own output expecting the
// input back; it is applied exactly once per field, to every field.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\textbackslash{}`)
		case '&', '%', '$', '#', '_', '{', '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '~':
			b.WriteString(`\textasciitilde{}`)
		case '^':
			b.WriteString(`\textasciicircum{}`)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
