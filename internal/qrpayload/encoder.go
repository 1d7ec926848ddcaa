package qrpayload

import (
	"fmt"
	"strings"

	"github.com/matu-sky/qrcode1/models"
)

// Encoder maps validated form input to a single QR-encodable payload string.
//
// The display base URL is injected at construction so that deep links never
// depend on ambient process state. Encoding is pure and deterministic: the
// same form and template always yield byte-identical output.
type Encoder struct {
	displayURL string
}

// NewEncoder constructs an Encoder whose deep links point at
// baseURL + "/display". A trailing slash on baseURL is tolerated.
func NewEncoder(baseURL string) *Encoder {
	return &Encoder{displayURL: strings.TrimRight(baseURL, "/") + "/display"}
}

// Encode returns the payload string for the form, or "" when the form fails
// its encodability check. The empty result is deliberate: insufficient input
// suppresses generation and is not an error.
//
// The menu content type cannot be encoded directly because its link carries
// a store-assigned record identifier; Encode returns ErrMenuRecordRequired
// and callers persist first, then call [Encoder.BuildMenuLink].
func (e *Encoder) Encode(form models.FormState, template models.Template) (string, error) {
	if form.Type == models.Menu {
		return "", ErrMenuRecordRequired
	}
	if !form.Type.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownContentType, form.Type)
	}
	if !IsEncodable(form) {
		return "", nil
	}

	switch form.Type {
	case models.URL:
		return form.URL.Value, nil
	case models.Text:
		return e.buildTextLink(form.Text.Value, template), nil
	case models.VCard:
		return BuildVCard(*form.Contact), nil
	case models.Wifi:
		return BuildWifiString(*form.Wifi), nil
	case models.SMS:
		return BuildSMSString(*form.SMS), nil
	case models.Payment:
		return e.buildPaymentLink(*form.Payment, template), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownContentType, form.Type)
}

// BuildMenuLink returns the display link for a persisted menu record.
// The id is the immutable identifier assigned by the store at creation.
func (e *Encoder) BuildMenuLink(recordID string) string {
	var q queryBuilder
	q.set(ParamType, string(models.Menu))
	q.set(ParamMenuID, recordID)
	return e.displayURL + "?" + q.String()
}

// BuildContactLink returns the deep-link rendition of a contact card: a
// display link carrying each non-empty card field as a query parameter.
// This is the alternative to the self-contained vCard string for cards that
// should open the styled business card view instead of the OS contact sheet.
// Returns "" for an all-empty card.
func (e *Encoder) BuildContactLink(card models.ContactCard) string {
	if card.Empty() {
		return ""
	}
	return e.displayURL + "?" + ContactQuery(card)
}

// ContactQuery renders a contact card as display link query parameters in
// schema order. Shared between link generation and the vCard download link
// on the rendered page.
func ContactQuery(card models.ContactCard) string {
	var q queryBuilder
	q.set(ParamType, string(models.VCard))
	q.setOptional(ParamName, card.Name)
	q.setOptional(ParamTitle, card.Title)
	q.setOptional(ParamOrg, card.Org)
	q.setOptional(ParamPhone, card.Phone)
	q.setOptional(ParamWorkPhone, card.WorkPhone)
	q.setOptional(ParamFax, card.Fax)
	q.setOptional(ParamEmail, card.Email)
	q.setOptional(ParamWebsite, card.Website)
	q.setOptional(ParamAddress, card.Address)
	return q.String()
}

func (e *Encoder) buildTextLink(text string, template models.Template) string {
	var q queryBuilder
	q.set(ParamType, string(models.Text))
	q.set(ParamTemplate, string(template))
	q.set(ParamText, text)
	return e.displayURL + "?" + q.String()
}

func (e *Encoder) buildPaymentLink(payment models.PaymentInfo, template models.Template) string {
	var q queryBuilder
	q.set(ParamType, string(models.Payment))
	q.set(ParamTemplate, string(template))
	q.set(ParamBank, payment.Bank)
	q.set(ParamAccountNumber, payment.AccountNumber)
	q.setOptional(ParamAccountHolder, payment.AccountHolder)
	q.setOptional(ParamAmount, payment.Amount)
	q.setOptional(ParamBackground, payment.BackgroundURL)
	return e.displayURL + "?" + q.String()
}

// BuildWifiString renders Wi-Fi credentials as a WIFI: configuration string.
// The SSID and password are escaped independently; an unset encryption mode
// falls back to WPA.
func BuildWifiString(wifi models.WifiCredential) string {
	encryption := wifi.Encryption
	if encryption == "" {
		encryption = models.WifiWPA
	}

	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;;",
		encryption, EscapeWifiField(wifi.SSID), EscapeWifiField(wifi.Password))
}

// BuildSMSString renders a pre-filled SMS as an SMSTO: URI.
// The message part may be empty; the trailing colon is still emitted.
func BuildSMSString(sms models.SMSMessage) string {
	return fmt.Sprintf("SMSTO:%s:%s", sms.Phone, sms.Message)
}
