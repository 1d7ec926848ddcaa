package tui

import (
	"context"

	"github.com/matu-sky/qrcode1/internal/adapter"
	"github.com/matu-sky/qrcode1/internal/logger"
	"github.com/matu-sky/qrcode1/internal/qrpayload"
	"github.com/matu-sky/qrcode1/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal client. It owns the server adapter, the local state
// file and the payload encoder, and wires them into the Bubble Tea pages.
type TUI struct {
	adapter adapter.ServerAdapter
	state   store.LocalStateStorage
	encoder *qrpayload.Encoder
	version string

	logger *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, state store.LocalStateStorage, encoder *qrpayload.Encoder, version string, log *logger.Logger) (*TUI, error) {
	if serverAdapter == nil || state == nil || encoder == nil {
		return nil, ErrMissingDependencies
	}

	return &TUI{
		adapter: serverAdapter,
		state:   state,
		encoder: encoder,
		version: version,
		logger:  log,
	}, nil
}

// Run resumes a cached session if one exists and drives the full client
// loop until the user quits. Returns [ErrUserQuit] on a deliberate exit so
// the caller can distinguish it from a terminal failure.
func (t *TUI) Run(ctx context.Context) error {
	if session, err := t.state.Session(); err == nil {
		t.adapter.SetToken(session.Token)
		setSessionUserID(session.UserID)
	}

	pages := map[string]tea.Model{
		pageGenerator:  newGeneratorModel(ctx, t.adapter, t.encoder),
		pageLogin:      newLoginModel(ctx, t.adapter),
		pageRegister:   newRegisterModel(ctx, t.adapter),
		pageMenuList:   newMenuListModel(ctx, t.adapter),
		pageMenuEditor: newMenuEditorModel(ctx, t.adapter, t.state),
	}

	root := newRootModel(pages, pageGenerator, t.state, t.version)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(rootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
