package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/matu-sky/qrcode1/internal/adapter"
	"github.com/matu-sky/qrcode1/internal/store"
	"github.com/matu-sky/qrcode1/models"
)

// draftKeyNew is the local-state key for a menu that has never been saved
// to the server. Saved records draft under their record id instead.
const draftKeyNew = "new"

const headerFieldCount = 3

// menuRow is one editable dish line: category, name and the two price
// columns. Rows sharing a category value are grouped into one category on
// save, in row order.
type menuRow struct {
	inputs [4]textinput.Model
}

func newMenuRow(category, name, dineIn, takeout string) menuRow {
	var row menuRow
	placeholders := [4]string{"분류", "메뉴 이름", "매장 가격", "포장 가격"}
	values := [4]string{category, name, dineIn, takeout}
	for i := range row.inputs {
		row.inputs[i] = textinput.New()
		row.inputs[i].Placeholder = placeholders[i]
		row.inputs[i].Width = 16
		row.inputs[i].SetValue(values[i])
	}
	return row
}

// menuEditorModel edits one menu document: the shop header fields plus a
// variable list of dish rows. Edits are drafted to the local state file on
// exit, so an interrupted session survives a restart; the draft is dropped
// once the server accepts the document.
type menuEditorModel struct {
	ctx           context.Context
	serverAdapter adapter.ServerAdapter
	state         store.LocalStateStorage

	recordID string
	header   [headerFieldCount]textinput.Model
	rows     []menuRow
	focus    int

	submitting bool
	errMsg     string
}

func newMenuEditorModel(ctx context.Context, serverAdapter adapter.ServerAdapter, state store.LocalStateStorage) *menuEditorModel {
	return &menuEditorModel{ctx: ctx, serverAdapter: serverAdapter, state: state}
}

func (m *menuEditorModel) Init() tea.Cmd {
	m.load(openEditorMsg{})
	return textinput.Blink
}

// load resets the editor to the given record. A blank open resumes the
// unsaved draft when one exists.
func (m *menuEditorModel) load(msg openEditorMsg) {
	document := msg.document
	if msg.recordID == "" {
		if draft, ok := m.state.Draft(draftKeyNew); ok {
			document = draft
		}
	}

	m.recordID = msg.recordID
	m.submitting = false
	m.errMsg = ""
	m.focus = 0

	placeholders := [headerFieldCount]string{"가게 이름", "가게 소개", "로고 이미지 URL"}
	values := [headerFieldCount]string{document.ShopName, document.ShopDescription, document.ShopLogoURL}
	for i := range m.header {
		m.header[i] = textinput.New()
		m.header[i].Placeholder = placeholders[i]
		m.header[i].Width = 40
		m.header[i].SetValue(values[i])
	}
	m.header[0].Focus()

	m.rows = nil
	for _, category := range document.Categories {
		for _, item := range category.Items {
			m.rows = append(m.rows, newMenuRow(category.Name, item.Name, item.DineInPrice, item.TakeoutPrice))
		}
	}
	if len(m.rows) == 0 {
		m.rows = append(m.rows, newMenuRow("", "", "", ""))
	}
}

// document assembles the edited state back into a menu document. Rows are
// grouped by category value in first-appearance order; pruning of unusable
// rows is left to the save path so the user sees exactly what they typed.
func (m *menuEditorModel) document() models.MenuDocument {
	document := models.MenuDocument{
		ShopName:        strings.TrimSpace(m.header[0].Value()),
		ShopDescription: strings.TrimSpace(m.header[1].Value()),
		ShopLogoURL:     strings.TrimSpace(m.header[2].Value()),
	}

	index := map[string]int{}
	for _, row := range m.rows {
		category := strings.TrimSpace(row.inputs[0].Value())
		if category == "" {
			category = "메뉴"
		}
		item := models.MenuItem{
			Name:         strings.TrimSpace(row.inputs[1].Value()),
			DineInPrice:  strings.TrimSpace(row.inputs[2].Value()),
			TakeoutPrice: strings.TrimSpace(row.inputs[3].Value()),
		}

		pos, seen := index[category]
		if !seen {
			document.Categories = append(document.Categories, models.Category{Name: category})
			pos = len(document.Categories) - 1
			index[category] = pos
		}
		document.Categories[pos].Items = append(document.Categories[pos].Items, item)
	}

	return document
}

func (m *menuEditorModel) fieldCount() int {
	return headerFieldCount + len(m.rows)*4
}

func (m *menuEditorModel) input(i int) *textinput.Model {
	if i < headerFieldCount {
		return &m.header[i]
	}
	i -= headerFieldCount
	return &m.rows[i/4].inputs[i%4]
}

func (m *menuEditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case openEditorMsg:
		m.load(result)
		return m, textinput.Blink
	case menuSavedMsg:
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}

		key := draftKeyNew
		if m.recordID != "" {
			key = m.recordID
		}
		_ = m.state.DeleteDraft(key)

		return m, func() tea.Msg { return navigateTo{Page: pageMenuList} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.saveDraft()
		return m, func() tea.Msg { return navigateTo{Page: pageMenuList} }
	case "tab", "enter":
		m.focusField((m.focus + 1) % m.fieldCount())
		return m, nil
	case "shift+tab":
		m.focusField((m.focus - 1 + m.fieldCount()) % m.fieldCount())
		return m, nil
	case "ctrl+a":
		m.rows = append(m.rows, newMenuRow("", "", "", ""))
		m.focusField(m.fieldCount() - 4)
		return m, nil
	case "ctrl+x":
		if m.focus >= headerFieldCount && len(m.rows) > 1 {
			row := (m.focus - headerFieldCount) / 4
			m.rows = append(m.rows[:row], m.rows[row+1:]...)
			m.focusField(headerFieldCount)
		}
		return m, nil
	case "ctrl+s":
		if m.submitting {
			return m, nil
		}

		document := m.document().Prune()
		if !document.Encodable() {
			m.errMsg = "가게 이름과 하나 이상의 메뉴 항목이 필요합니다"
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		m.saveDraft()
		return m, m.cmdSave(document)
	}

	var cmd tea.Cmd
	current := m.input(m.focus)
	*current, cmd = current.Update(msg)
	return m, cmd
}

func (m *menuEditorModel) View() string {
	var b strings.Builder

	labels := [headerFieldCount]string{"가게 이름", "가게 소개", "로고 URL "}
	for i, label := range labels {
		b.WriteString(label + " │ [" + m.header[i].View() + "]\n")
	}

	b.WriteString("\n분류 │ 메뉴 이름 │ 매장 가격 │ 포장 가격\n")
	for _, row := range m.rows {
		cells := make([]string, len(row.inputs))
		for i, in := range row.inputs {
			cells[i] = "[" + in.View() + "]"
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n저장 중...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("오류: "+m.errMsg) + "\n")
	}

	title := "새 메뉴"
	if m.recordID != "" {
		title = "메뉴 편집"
	}
	hotKeys := "ctrl+s: 저장 │ ctrl+a: 항목 추가 │ ctrl+x: 항목 삭제 │ tab: 다음 필드 │ esc: 뒤로"
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *menuEditorModel) focusField(i int) {
	m.input(m.focus).Blur()
	m.focus = i
	m.input(m.focus).Focus()
}

func (m *menuEditorModel) saveDraft() {
	key := draftKeyNew
	if m.recordID != "" {
		key = m.recordID
	}
	if err := m.state.SaveDraft(key, m.document()); err != nil {
		m.errMsg = humanizeServerUnavailableError(err)
	}
}

func (m *menuEditorModel) cmdSave(document models.MenuDocument) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.serverAdapter
	recordID := m.recordID

	return func() tea.Msg {
		var saved adapter.SavedMenu
		var err error
		if recordID == "" {
			saved, err = serverAdapter.CreateMenu(ctx, document)
		} else {
			saved, err = serverAdapter.UpdateMenu(ctx, recordID, document)
		}
		return menuSavedMsg{saved: saved, err: err}
	}
}
