package qrpayload

import (
	"strings"

	"github.com/matu-sky/qrcode1/models"
)

// BuildVCard renders a contact card as a vCard 3.0 string.
//
// Non-empty fields are emitted one line each in the canonical order:
// full name, organization, title, mobile phone, work phone, fax, email,
// website, postal address. Empty fields produce no line at all. A card with
// every field empty yields the empty string, not an empty vCard envelope.
func BuildVCard(card models.ContactCard) string {
	if card.Empty() {
		return ""
	}

	lines := []string{"BEGIN:VCARD", "VERSION:3.0"}
	appendLine := func(prefix, value string) {
		if value != "" {
			lines = append(lines, prefix+value)
		}
	}

	appendLine("FN:", card.Name)
	appendLine("ORG:", card.Org)
	appendLine("TITLE:", card.Title)
	appendLine("TEL;TYPE=CELL:", card.Phone)
	appendLine("TEL;TYPE=WORK,VOICE:", card.WorkPhone)
	appendLine("TEL;TYPE=FAX:", card.Fax)
	appendLine("EMAIL:", card.Email)
	appendLine("URL:", card.Website)
	// ADR keeps the first two structured components empty on purpose:
	// the whole user-entered address goes into the street component.
	appendLine("ADR;TYPE=WORK:;;", card.Address)
	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\n")
}
