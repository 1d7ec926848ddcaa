// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 matu-sky

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/matu-sky/qrcode1/internal/adapter"
	"github.com/matu-sky/qrcode1/models"
)

// loginModel is the Bubble Tea model for the sign-in screen. It renders two
// text inputs (email and password) and dispatches an async login command on
// form submission. On success an [authDoneMsg] is produced; the root model
// persists the session and this model navigates to the saved menu list.
type loginModel struct {
	ctx           context.Context
	serverAdapter adapter.ServerAdapter

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// newLoginModel creates a [loginModel] with pre-configured email and
// password inputs. The email field receives focus immediately; the password
// field uses masked echo.
func newLoginModel(ctx context.Context, serverAdapter adapter.ServerAdapter) *loginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &loginModel{
		ctx:           ctx,
		serverAdapter: serverAdapter,
		inputs:        []textinput.Model{emailInput, passwordInput},
	}
}

func (m *loginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [authDoneMsg] — clears submitting state; on error, populates errMsg;
//     on success, navigates to the saved menu list.
//   - esc           — cancels and navigates back to the generator.
//   - tab/shift+tab — moves focus between inputs.
//   - enter         — validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg { return navigateTo{Page: pageMenuList} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return navigateTo{Page: pageGenerator} }
		case "ctrl+r":
			return m, func() tea.Msg { return navigateTo{Page: pageRegister} }
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
			if email == "" || pass == "" {
				m.errMsg = "이메일과 비밀번호를 입력해 주세요"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *loginModel) View() string {
	var b strings.Builder
	b.WriteString("이메일   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("비밀번호 │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[로그인 중...]\n")
	} else {
		b.WriteString("\n[로그인]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("오류: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("로그인", strings.TrimRight(b.String(), "\n"), "esc: 뒤로 │ ctrl+r: 회원가입 │ enter: 확인")
}

func (m *loginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.serverAdapter

	return func() tea.Msg {
		token, err := serverAdapter.Login(ctx, models.User{
			Email:    email,
			Password: pass,
		})

		return authDoneMsg{token: token, email: email, err: err}
	}
}

func (m *loginModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *loginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *loginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
