package models

// ContentType defines which form fields apply to a generation action and
// which encoding strategy produces the QR payload.
// The value is chosen once per generation action and never changes for it.
type ContentType string

const (
	// URL encodes the raw input string as-is.
	URL ContentType = "url"

	// Text encodes a deep link to /display carrying the text and template.
	Text ContentType = "text"

	// VCard encodes a self-contained vCard 3.0 string.
	VCard ContentType = "vcard"

	// Wifi encodes a WIFI: network configuration string.
	Wifi ContentType = "wifi"

	// SMS encodes an SMSTO: URI.
	SMS ContentType = "sms"

	// Payment encodes a deep link to /display carrying bank transfer details.
	Payment ContentType = "payment"

	// Menu encodes a deep link to /display carrying only the persisted
	// menu record identifier.
	Menu ContentType = "menu"
)

// Valid reports whether t is one of the closed set of content types.
func (t ContentType) Valid() bool {
	switch t {
	case URL, Text, VCard, Wifi, SMS, Payment, Menu:
		return true
	}
	return false
}

// Template identifies the visual container variant used by the display view.
// It is independent of the content type's data shape.
type Template string

const (
	// TemplateMemo is the plain memo container, the default for most types.
	TemplateMemo Template = "memo"

	// TemplateStickyNote is the sticky-note container.
	TemplateStickyNote Template = "sticky-note"

	// TemplateReceipt is the receipt-style container.
	TemplateReceipt Template = "receipt"

	// TemplateBankInfoCard is the bank transfer info card,
	// the default for the payment content type.
	TemplateBankInfoCard Template = "bank-info-card"

	// TemplateWebPayment is the full-page remittance view with
	// bank app deep links. Payment only.
	TemplateWebPayment Template = "web-payment"

	// TemplateBusinessCard is the fixed presentation for contact cards.
	// Contact cards ignore the requested template.
	TemplateBusinessCard Template = "business-card"

	// TemplateMenuTemplate is the fixed presentation for menus.
	// Menus ignore the requested template.
	TemplateMenuTemplate Template = "menu-template"
)

// SelectableTemplates returns the templates a user may pick for the given
// content type. VCard and Menu return nil: their presentation is fixed and
// the selector is hidden for them.
func SelectableTemplates(t ContentType) []Template {
	switch t {
	case Payment:
		return []Template{TemplateMemo, TemplateStickyNote, TemplateReceipt, TemplateBankInfoCard, TemplateWebPayment}
	case Text, SMS, URL, Wifi:
		return []Template{TemplateMemo, TemplateStickyNote, TemplateReceipt}
	default:
		return nil
	}
}

// DefaultTemplate returns the template pre-selected when the user switches
// to the given content type tab.
func DefaultTemplate(t ContentType) Template {
	if t == Payment {
		return TemplateBankInfoCard
	}
	return TemplateMemo
}
