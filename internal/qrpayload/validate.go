package qrpayload

import "github.com/matu-sky/qrcode1/models"

// IsEncodable reports whether the form holds enough input to produce a
// payload. A false result is not an error condition: the encoder simply
// produces nothing and the UI shows a neutral placeholder.
//
// Per-type rules:
//   - url, text: the single input is non-empty.
//   - vcard: at least one of the nine fields is non-empty.
//   - wifi: the network name is non-empty (password may be empty).
//   - sms: the phone number is non-empty (message may be empty).
//   - payment: bank name or account number is non-empty.
//   - menu: the pruned document keeps its shop name and at least one category.
func IsEncodable(form models.FormState) bool {
	switch form.Type {
	case models.URL:
		return form.URL != nil && form.URL.Value != ""
	case models.Text:
		return form.Text != nil && form.Text.Value != ""
	case models.VCard:
		return form.Contact != nil && !form.Contact.Empty()
	case models.Wifi:
		return form.Wifi != nil && form.Wifi.SSID != ""
	case models.SMS:
		return form.SMS != nil && form.SMS.Phone != ""
	case models.Payment:
		return form.Payment != nil && (form.Payment.Bank != "" || form.Payment.AccountNumber != "")
	case models.Menu:
		return form.Menu != nil && form.Menu.Prune().Encodable()
	}
	return false
}
