package tui

import (
	"github.com/matu-sky/qrcode1/internal/adapter"
	"github.com/matu-sky/qrcode1/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page identifiers used for navigateTo routing.
const (
	pageGenerator  = "generator"
	pageLogin      = "login"
	pageRegister   = "register"
	pageMenuList   = "menus"
	pageMenuEditor = "menuEditor"
)

// navigateTo switches the active page. Payload, when non-nil, is delivered
// to the target page as its first message instead of Init.
type navigateTo struct {
	Page    string
	Payload tea.Msg
}

// authDoneMsg is produced by the async login/register commands.
type authDoneMsg struct {
	token models.Token
	email string
	err   error
}

type registerSuccessNotice struct {
	email string
}

type menusLoadedMsg struct {
	items []models.MenuSummary
	err   error
}

// openEditorMsg carries the record (or blank state) into the menu editor.
type openEditorMsg struct {
	recordID string
	document models.MenuDocument
}

type menuSavedMsg struct {
	saved adapter.SavedMenu
	err   error
}

type menuDeletedMsg struct {
	recordID string
	err      error
}

type qrSavedMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	what string
}

type clearStatusMsg struct{}
