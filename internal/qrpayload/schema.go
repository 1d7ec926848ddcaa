package qrpayload

import (
	"net/url"
	"strings"

	"github.com/matu-sky/qrcode1/models"
)

// Canonical display link query parameter names. The producer and the
// display view share this vocabulary; renaming any of these breaks every
// previously printed QR code.
const (
	ParamType     = "type"
	ParamTemplate = "template"
	ParamText     = "text"
	ParamMenuID   = "id"

	ParamBank          = "bank"
	ParamAccountNumber = "accountNumber"
	ParamAccountHolder = "accountHolder"
	ParamAmount        = "amount"
	ParamBackground    = "bg"

	ParamName      = "name"
	ParamTitle     = "title"
	ParamOrg       = "org"
	ParamPhone     = "phone"
	ParamWorkPhone = "workPhone"
	ParamFax       = "fax"
	ParamEmail     = "email"
	ParamWebsite   = "website"
	ParamAddress   = "address"
)

// DisplayParams is the parsed form of a display link query string.
// Every field defaults to its zero value when the parameter is absent;
// parsing never fails.
type DisplayParams struct {
	Type models.ContentType

	// Template is the raw requested template. Resolution of the effective
	// presentation (including per-type overrides) happens in the display
	// layer, not here.
	Template models.Template

	Text   string
	MenuID string

	Payment models.PaymentInfo
	Contact models.ContactCard
}

// ParseDisplayQuery reads a display link query into DisplayParams.
//
// Lookup is by parameter name only; parameter order carries no meaning.
// An unknown or missing type falls back to text, matching the display
// view's generic renderer.
func ParseDisplayQuery(query url.Values) DisplayParams {
	params := DisplayParams{
		Type:     models.ContentType(query.Get(ParamType)),
		Template: models.Template(query.Get(ParamTemplate)),
		Text:     query.Get(ParamText),
		MenuID:   query.Get(ParamMenuID),
		Payment: models.PaymentInfo{
			Bank:          query.Get(ParamBank),
			AccountNumber: query.Get(ParamAccountNumber),
			AccountHolder: query.Get(ParamAccountHolder),
			Amount:        query.Get(ParamAmount),
			BackgroundURL: query.Get(ParamBackground),
		},
		Contact: models.ContactCard{
			Name:      query.Get(ParamName),
			Title:     query.Get(ParamTitle),
			Org:       query.Get(ParamOrg),
			Phone:     query.Get(ParamPhone),
			WorkPhone: query.Get(ParamWorkPhone),
			Fax:       query.Get(ParamFax),
			Email:     query.Get(ParamEmail),
			Website:   query.Get(ParamWebsite),
			Address:   query.Get(ParamAddress),
		},
	}

	if !params.Type.Valid() {
		params.Type = models.Text
	}

	return params
}

// queryBuilder assembles a query string preserving the exact order in which
// parameters are added. url.Values cannot be used for generation because its
// Encode method sorts keys, and reproducible output requires the declared
// schema order.
type queryBuilder struct {
	b strings.Builder
}

// set appends key=value regardless of whether value is empty.
func (q *queryBuilder) set(key, value string) {
	if q.b.Len() > 0 {
		q.b.WriteByte('&')
	}
	q.b.WriteString(url.QueryEscape(key))
	q.b.WriteByte('=')
	q.b.WriteString(url.QueryEscape(value))
}

// setOptional appends key=value only when value is non-empty. Optional
// parameters are omitted entirely, never emitted empty.
func (q *queryBuilder) setOptional(key, value string) {
	if value != "" {
		q.set(key, value)
	}
}

func (q *queryBuilder) String() string {
	return q.b.String()
}
