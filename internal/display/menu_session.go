package display

import "github.com/matu-sky/qrcode1/models"

// User-facing messages for the menu presentation error state.
const (
	MsgMenuFetchFailed = "메뉴 정보를 불러오는 데 실패했습니다."
	MsgMenuNotFound    = "해당 메뉴를 찾을 수 없습니다."
	MsgMenuMalformed   = "메뉴 정보가 올바르지 않습니다."
)

// MenuState is a state of the menu viewing session.
type MenuState string

const (
	// MenuLoading is the initial state while the record fetch is pending.
	MenuLoading MenuState = "loading"

	// MenuError is terminal: the fetch failed, the record was missing, or
	// the stored document lacks a shop name. No retry is built in.
	MenuError MenuState = "error"

	// MenuWelcome shows the shop header and the dine-in/takeout choice.
	MenuWelcome MenuState = "welcome"

	// MenuView shows the category list with the chosen price column.
	MenuView MenuState = "menu"
)

// PriceColumn selects which price is shown for each menu item.
type PriceColumn string

const (
	PriceDineIn  PriceColumn = "dineIn"
	PriceTakeout PriceColumn = "takeout"
)

// Valid reports whether c is one of the two known columns.
func (c PriceColumn) Valid() bool {
	return c == PriceDineIn || c == PriceTakeout
}

// MenuSession drives the menu presentation:
//
//	Loading → {Error, Welcome}
//	Welcome → MenuView (price column chosen)
//	MenuView → Welcome (back)
//
// Error is terminal. Transitions outside this table are ignored, keeping
// the session safe against stale or repeated inputs.
type MenuSession struct {
	state    MenuState
	document models.MenuDocument
	errorMsg string
	price    PriceColumn
}

// NewMenuSession returns a session in the Loading state.
func NewMenuSession() *MenuSession {
	return &MenuSession{state: MenuLoading}
}

// Resolve completes the record fetch. A fetch error moves to Error with the
// given message; a document without a shop name is treated as malformed.
// Otherwise the session enters Welcome. Only valid while Loading.
func (s *MenuSession) Resolve(document models.MenuDocument, errorMsg string) {
	if s.state != MenuLoading {
		return
	}

	if errorMsg != "" {
		s.state = MenuError
		s.errorMsg = errorMsg
		return
	}

	if document.ShopName == "" {
		s.state = MenuError
		s.errorMsg = MsgMenuMalformed
		return
	}

	s.document = document
	s.state = MenuWelcome
}

// ChoosePrice moves Welcome → MenuView with the chosen price column.
// Invalid columns and calls outside Welcome are ignored.
func (s *MenuSession) ChoosePrice(column PriceColumn) {
	if s.state != MenuWelcome || !column.Valid() {
		return
	}

	s.price = column
	s.state = MenuView
}

// Back moves MenuView → Welcome.
func (s *MenuSession) Back() {
	if s.state != MenuView {
		return
	}
	s.state = MenuWelcome
}

// State returns the current session state.
func (s *MenuSession) State() MenuState {
	return s.state
}

// Document returns the resolved menu document. Zero until Welcome.
func (s *MenuSession) Document() models.MenuDocument {
	return s.document
}

// ErrorMessage returns the user-facing message for the Error state.
func (s *MenuSession) ErrorMessage() string {
	return s.errorMsg
}

// Price returns the chosen price column. Zero until a choice is made.
func (s *MenuSession) Price() PriceColumn {
	return s.price
}

// ItemPrice returns the price of item under the session's chosen column.
func (s *MenuSession) ItemPrice(item models.MenuItem) string {
	if s.price == PriceTakeout {
		return item.TakeoutPrice
	}
	return item.DineInPrice
}
