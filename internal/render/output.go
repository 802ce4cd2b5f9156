package render

import (
	"fmt"
	"strings"

	"github.com/andortizg/QSL-Generator/internal/model"
)

// OutputName returns the conventional PDF filename for a contact,
// qsl_<their call>_<date>.pdf, with characters that are hostile to
// filesystems replaced by dashes. When the contact carries neither a
// callsign nor a date the generic qsl_card.pdf is used.
func OutputName(contact model.Contact) string {
	call := sanitizeNamePart(contact.TheirCall)
	date := sanitizeNamePart(contact.Date)
	switch {
	case call != "" && date != "":
		return fmt.Sprintf("qsl_%s_%s.pdf", call, date)
	case call != "":
		return fmt.Sprintf("qsl_%s.pdf", call)
	case date != "":
		return fmt.Sprintf("qsl_%s.pdf", date)
	}
	return pdfFileName
}

func sanitizeNamePart(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
