package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/matu-sky/qrcode1/internal/adapter"
	"github.com/matu-sky/qrcode1/models"
)

// menuListModel shows the signed-in account's saved menus. From here the
// user opens the editor (new or existing record), deletes a record after a
// confirmation prompt, or copies a record's display link.
type menuListModel struct {
	ctx           context.Context
	serverAdapter adapter.ServerAdapter

	items   []models.MenuSummary
	idx     int
	loading bool

	confirmDelete bool

	status string
	errMsg string
}

func newMenuListModel(ctx context.Context, serverAdapter adapter.ServerAdapter) *menuListModel {
	return &menuListModel{ctx: ctx, serverAdapter: serverAdapter}
}

func (m *menuListModel) Init() tea.Cmd {
	m.loading = true
	m.confirmDelete = false
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *menuListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case menusLoadedMsg:
		m.loading = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = result.items
		if m.idx >= len(m.items) {
			m.idx = 0
		}
		return m, nil
	case menuDeletedMsg:
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.status = "메뉴를 삭제했습니다"
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), clearStatusLater())
	case menuSavedMsg:
		// editor round trip finished while this page was reopened
		if result.err == nil {
			m.loading = true
			return m, m.cmdLoad()
		}
		return m, nil
	case copiedMsg:
		m.status = result.what + " 복사했습니다"
		return m, clearStatusLater()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmDelete {
		switch keyMsg.String() {
		case "y":
			m.confirmDelete = false
			return m, m.cmdDelete(m.items[m.idx].ID)
		case "n", "esc":
			m.confirmDelete = false
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "n":
		return m, func() tea.Msg {
			return navigateTo{Page: pageMenuEditor, Payload: openEditorMsg{}}
		}
	case "e", "enter":
		if len(m.items) == 0 {
			return m, nil
		}
		return m, m.cmdOpen(m.items[m.idx].ID)
	case "d":
		if len(m.items) > 0 {
			m.confirmDelete = true
		}
	case "c":
		if len(m.items) == 0 {
			return m, nil
		}
		return m, m.cmdCopyLink(m.items[m.idx].ID)
	case "r":
		m.loading = true
		return m, m.cmdLoad()
	case "esc":
		return m, func() tea.Msg { return navigateTo{Page: pageGenerator} }
	}

	return m, nil
}

func (m *menuListModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: " + m.status + "\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("불러오는 중...\n")
	case len(m.items) == 0:
		b.WriteString("저장된 메뉴가 없습니다. n을 눌러 새 메뉴를 만들어 보세요.\n")
	default:
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			name := item.ShopName
			if name == "" {
				name = "(이름 없음)"
			}
			b.WriteString(cursor + " " + fitText(name, 30) + "\n")
		}
	}

	if m.confirmDelete {
		b.WriteString("\n정말 삭제할까요? (y/n)\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("오류: "+m.errMsg) + "\n")
	}

	hotKeys := "n: 새 메뉴 │ e: 편집 │ d: 삭제 │ c: 링크 복사 │ r: 새로고침 │ esc: 뒤로"
	return renderPage("저장된 메뉴", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *menuListModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.serverAdapter
	return func() tea.Msg {
		items, err := serverAdapter.ListMenus(ctx)
		return menusLoadedMsg{items: items, err: err}
	}
}

func (m *menuListModel) cmdOpen(recordID string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.serverAdapter
	return func() tea.Msg {
		saved, err := serverAdapter.GetMenu(ctx, recordID)
		if err != nil {
			return menusLoadedMsg{err: err}
		}
		return navigateTo{
			Page:    pageMenuEditor,
			Payload: openEditorMsg{recordID: saved.ID, document: saved.Document},
		}
	}
}

func (m *menuListModel) cmdDelete(recordID string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.serverAdapter
	return func() tea.Msg {
		err := serverAdapter.DeleteMenu(ctx, recordID)
		return menuDeletedMsg{recordID: recordID, err: err}
	}
}

func (m *menuListModel) cmdCopyLink(recordID string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.serverAdapter
	return func() tea.Msg {
		saved, err := serverAdapter.GetMenu(ctx, recordID)
		if err != nil {
			return menusLoadedMsg{err: err}
		}
		if err = clipboard.WriteAll(saved.Link); err != nil {
			return menusLoadedMsg{err: err}
		}
		return copiedMsg{what: "링크를"}
	}
}
