package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/matu-sky/qrcode1/internal/adapter"
	"github.com/matu-sky/qrcode1/models"
)

// registerModel is the Bubble Tea model for the sign-up screen. It renders
// three text inputs (email, password, password confirmation) and dispatches
// an async registration command on form submission. Registration signs the
// account in directly: the server answers with a bearer token, so on
// success the model emits [authDoneMsg] and returns to the generator with a
// success notice.
type registerModel struct {
	ctx           context.Context
	serverAdapter adapter.ServerAdapter

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newRegisterModel(ctx context.Context, serverAdapter adapter.ServerAdapter) *registerModel {
	fields := make([]textinput.Model, 3)

	fields[0] = textinput.New()
	fields[0].Placeholder = "email"
	fields[0].CharLimit = 254
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "password"
	fields[1].EchoMode = textinput.EchoPassword
	fields[1].EchoCharacter = '*'
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "repeat password"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	return &registerModel{
		ctx:           ctx,
		serverAdapter: serverAdapter,
		inputs:        fields,
	}
}

func (m *registerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [authDoneMsg] — clears submitting state; on error, populates errMsg;
//     on success, resets the form and navigates to the generator with a
//     [registerSuccessNotice] payload.
//   - esc           — cancels and navigates back to the login screen.
//   - tab/shift+tab — moves focus between inputs.
//   - enter         — validates inputs (all required; passwords must match)
//     and dispatches the async registration command.
//
// All other key events are forwarded to the focused input widget.
func (m *registerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return navigateTo{
				Page:    pageGenerator,
				Payload: registerSuccessNotice{email: result.email},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return navigateTo{Page: pageLogin} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			repeat := m.inputs[2].Value()

			if email == "" || pass == "" || repeat == "" {
				m.errMsg = "모든 필드를 입력해 주세요"
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "비밀번호가 일치하지 않습니다"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(email, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *registerModel) View() string {
	var b strings.Builder
	b.WriteString("이메일        │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("비밀번호      │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("비밀번호 확인 │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[가입 중...]\n")
	} else {
		b.WriteString("\n[가입하기]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("오류: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("회원가입", strings.TrimRight(b.String(), "\n"), "esc: 뒤로 │ tab: 다음 필드 │ enter: 확인")
}

func (m *registerModel) cmdRegister(email, pass string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.serverAdapter

	return func() tea.Msg {
		token, err := serverAdapter.Register(ctx, models.User{
			Email:    email,
			Password: pass,
		})
		return authDoneMsg{token: token, email: email, err: err}
	}
}

func (m *registerModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *registerModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *registerModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
