package display

import (
	"html/template"

	"github.com/matu-sky/qrcode1/internal/qrpayload"
	"github.com/matu-sky/qrcode1/models"
)

// NoContentPlaceholder is shown by the generic renderer when the link
// carries no displayable text.
const NoContentPlaceholder = "내용이 없습니다."

// DefaultPaymentBackground is the header image used by the web-payment
// presentation when the link does not carry a bg parameter.
const DefaultPaymentBackground = "https://images.pexels.com/photos/3184454/pexels-photo-3184454.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"

// Presentation is the reconstructed view model for a display link.
// Exactly the variant matching Type is populated; the rest stay nil.
type Presentation struct {
	Type models.ContentType

	// PresentationID is the resolved container variant, after content-type
	// overrides and defaults.
	PresentationID models.Template

	// Text is the generic renderer content. When the primary field is
	// absent it holds NoContentPlaceholder so rendering stays total.
	Text string

	Payment *PaymentView
	Contact *models.ContactCard

	// MenuID is set for menu links; the menu document itself arrives
	// through the MenuSession after the store fetch completes.
	MenuID string
}

// PaymentView is the payment presentation data.
type PaymentView struct {
	Bank          string
	AccountNumber string
	AccountHolder string
	Amount        string
	BackgroundURL string
}

// FullAccount returns the combined "bank accountNumber" string offered for
// copying on the web-payment page.
func (p PaymentView) FullAccount() string {
	return p.Bank + " " + p.AccountNumber
}

// Reconstruct turns parsed link parameters into a Presentation.
//
// The function is total: every absent parameter resolves to a defined
// default and no input can make it fail. At worst the generic renderer
// shows the no-content placeholder.
func Reconstruct(params qrpayload.DisplayParams) Presentation {
	p := Presentation{
		Type:           params.Type,
		PresentationID: ResolveTemplate(params.Type, params.Template),
	}

	switch params.Type {
	case models.Payment:
		view := PaymentView{
			Bank:          params.Payment.Bank,
			AccountNumber: params.Payment.AccountNumber,
			AccountHolder: params.Payment.AccountHolder,
			Amount:        params.Payment.Amount,
			BackgroundURL: params.Payment.BackgroundURL,
		}
		if view.BackgroundURL == "" {
			view.BackgroundURL = DefaultPaymentBackground
		}
		p.Payment = &view
	case models.VCard:
		contact := params.Contact
		p.Contact = &contact
	case models.Menu:
		p.MenuID = params.MenuID
	default:
		p.Text = params.Text
		if p.Text == "" {
			p.Text = NoContentPlaceholder
		}
	}

	return p
}

// BuildVCardFile renders the downloadable .vcf content for a contact
// presentation, using the same canonical line order as the encoder.
// Returns "" when the presentation holds no contact card.
func (p Presentation) BuildVCardFile() string {
	if p.Contact == nil {
		return ""
	}
	return qrpayload.BuildVCard(*p.Contact)
}

// VCardQuery returns the contact card re-encoded as display link query
// parameters. The rendered page uses it to link the .vcf download. The
// result is already percent-encoded, hence the template.URL type.
func (p Presentation) VCardQuery() template.URL {
	if p.Contact == nil {
		return ""
	}
	return template.URL(qrpayload.ContactQuery(*p.Contact))
}
