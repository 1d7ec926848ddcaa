package tui

import (
	"github.com/matu-sky/qrcode1/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

// rootModel is the TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit
// 3) handles navigateTo messages
// 4) persists the session on successful auth
// 5) delegates all other messages to the active page
type rootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	state   store.LocalStateStorage
	version string

	quitByUser    bool
	showBuildInfo bool
}

// newRootModel registers all pages and opens startPage.
func newRootModel(pages map[string]tea.Model, startPage string, state store.LocalStateStorage, version string) rootModel {
	return rootModel{
		pages:   pages,
		current: pages[startPage],
		state:   state,
		version: version,
	}
}

func (r rootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "ctrl+v":
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(navigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	// Persist the session once auth succeeds; pages only render the result.
	if auth, ok := msg.(authDoneMsg); ok && auth.err == nil {
		setSessionUserID(auth.token.UserID)
		if err := r.state.SaveSession(auth.token.UserID, auth.token.SignedString); err != nil {
			// a failed cache write only costs a re-login on next start
			_ = err
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r rootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.version)
	}
	if r.current == nil {
		return renderPage("QR", "", "")
	}
	return r.current.View()
}
