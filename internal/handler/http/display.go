package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/matu-sky/qrcode1/internal/display"
	"github.com/matu-sky/qrcode1/internal/logger"
	"github.com/matu-sky/qrcode1/internal/qrpayload"
	"github.com/matu-sky/qrcode1/internal/service"
	"github.com/matu-sky/qrcode1/internal/store"
	"github.com/matu-sky/qrcode1/models"
)

// priceParam selects the price column on the menu presentation. It is a
// navigation parameter of the display page itself, not part of the encoded
// link schema, so it lives here rather than in the payload package.
const priceParam = "price"

// displayView is the data handed to the display page template.
type displayView struct {
	Presentation display.Presentation
	BankApps     []display.BankApp
	Menu         *menuView
}

// menuView is the menu presentation slice of the display page.
type menuView struct {
	Session *display.MenuSession

	// DineInURL/TakeoutURL/BackURL are self-links driving the session
	// transitions; the page is stateless between requests.
	DineInURL  string
	TakeoutURL string
	BackURL    string
}

// display renders the page a scanned QR link opens.
//
// The handler is total with respect to the query string: any combination of
// parameters renders, falling back to the generic text presentation with a
// placeholder when content is absent.
func (h *Handler) display(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	params := qrpayload.ParseDisplayQuery(r.URL.Query())
	presentation := display.Reconstruct(params)

	view := displayView{
		Presentation: presentation,
		BankApps:     display.BankApps,
	}

	if presentation.Type == models.Menu {
		view.Menu = h.buildMenuView(r, presentation.MenuID)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.displayTmpl.ExecuteTemplate(w, "display.gohtml", view); err != nil {
		log.Err(err).Msg("display template rendering failed")
	}
}

// buildMenuView fetches the linked record and replays the session
// transitions requested through the price query parameter.
func (h *Handler) buildMenuView(r *http.Request, menuID string) *menuView {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session := display.NewMenuSession()

	record, err := h.services.MenuService.GetMenu(ctx, menuID)
	switch {
	case err == nil:
		session.Resolve(record.Document, "")
	case errors.Is(err, store.ErrMenuNotFound), errors.Is(err, service.ErrInvalidMenuID):
		session.Resolve(models.MenuDocument{}, display.MsgMenuNotFound)
	default:
		log.Err(err).Str("id", menuID).Msg("menu record fetch failed")
		session.Resolve(models.MenuDocument{}, display.MsgMenuFetchFailed)
	}

	if column := display.PriceColumn(r.URL.Query().Get(priceParam)); column.Valid() {
		session.ChoosePrice(column)
	}

	return &menuView{
		Session:    session,
		DineInURL:  menuSelfLink(r.URL, string(display.PriceDineIn)),
		TakeoutURL: menuSelfLink(r.URL, string(display.PriceTakeout)),
		BackURL:    menuSelfLink(r.URL, ""),
	}
}

// menuSelfLink rebuilds the current display URL with the price parameter
// set (or removed when price is empty).
func menuSelfLink(current *url.URL, price string) string {
	u := *current
	q := u.Query()
	if price == "" {
		q.Del(priceParam)
	} else {
		q.Set(priceParam, price)
	}
	u.RawQuery = q.Encode()
	return u.RequestURI()
}

// displayVCard serves the contact parameters of a business-card link as a
// downloadable vCard 3.0 file.
func (h *Handler) displayVCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	params := qrpayload.ParseDisplayQuery(r.URL.Query())
	params.Type = models.VCard
	presentation := display.Reconstruct(params)

	if presentation.Contact == nil || presentation.Contact.Empty() {
		http.Error(w, "no contact data", http.StatusBadRequest)
		return
	}
	vcf := presentation.BuildVCardFile()

	filename := "contact.vcf"
	if presentation.Contact.Name != "" {
		filename = presentation.Contact.Name + ".vcf"
	}

	w.Header().Set("Content-Type", "text/vcard; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write([]byte(vcf)); err != nil {
		log.Err(err).Msg("vcard write failed")
	}
}
