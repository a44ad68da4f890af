package tui

import (
	"context"
	"strings"

	"github.com/cardfolio/cardfolio/internal/service"
	"github.com/cardfolio/cardfolio/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authMode int

const (
	authModeLogin authMode = iota
	authModeRegister
)

// authModel is the Bubble Tea model for the combined login/register screen.
// It renders name (register only), email, and password inputs and dispatches
// an async auth command on submit. On success an [authDoneMsg] is produced
// and the program quits back into the main loop.
type authModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	mode       authMode
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	user       models.User
	quitByUser bool
}

const (
	authFieldName = iota
	authFieldEmail
	authFieldPassword
)

func newAuthModel(ctx context.Context, auth service.ClientAuthService) authModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.CharLimit = 100
	nameInput.Width = 40

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

	return authModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{nameInput, emailInput, passwordInput},
		focus:  authFieldEmail,
	}
}

func (m authModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m authModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.user = result.user
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.quitByUser = true
			return m, tea.Quit
		case "ctrl+r":
			m.toggleMode()
			return m, nil
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

			user := models.User{
				Name:     strings.TrimSpace(m.inputs[authFieldName].Value()),
				Email:    strings.TrimSpace(m.inputs[authFieldEmail].Value()),
				Password: m.inputs[authFieldPassword].Value(),
			}
			if user.Email == "" || user.Password == "" {
				m.errMsg = "email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmit(user)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m authModel) View() string {
	var b strings.Builder

	if m.mode == authModeRegister {
		b.WriteString("Name     [")
		b.WriteString(m.inputs[authFieldName].View())
		b.WriteString("]\n")
	}
	b.WriteString("Email    [")
	b.WriteString(m.inputs[authFieldEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password [")
	b.WriteString(m.inputs[authFieldPassword].View())
	b.WriteString("]\n")

	action := "Log in"
	if m.mode == authModeRegister {
		action = "Create account"
	}
	if m.submitting {
		b.WriteString("\n[" + action + "...]\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	title := "CARDFOLIO — LOG IN"
	if m.mode == authModeRegister {
		title = "CARDFOLIO — REGISTER"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: submit │ tab: next field │ ctrl+r: switch login/register │ esc: quit")
}

func (m *authModel) toggleMode() {
	if m.mode == authModeLogin {
		m.mode = authModeRegister
		m.setFocus(authFieldName)
	} else {
		m.mode = authModeLogin
		m.setFocus(authFieldEmail)
	}
	m.errMsg = ""
}

func (m authModel) cmdSubmit(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	register := m.mode == authModeRegister

	return func() tea.Msg {
		var (
			loggedIn models.User
			err      error
		)
		if register {
			loggedIn, err = auth.Register(ctx, user)
		} else {
			loggedIn, err = auth.Login(ctx, user)
		}
		return authDoneMsg{user: loggedIn, err: err}
	}
}

func (m *authModel) setFocus(idx int) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

func (m *authModel) focusNext() {
	next := (m.focus + 1) % len(m.inputs)
	if m.mode == authModeLogin && next == authFieldName {
		next = authFieldEmail
	}
	m.setFocus(next)
}

func (m *authModel) focusPrev() {
	prev := (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	if m.mode == authModeLogin && prev == authFieldName {
		prev = authFieldPassword
	}
	m.setFocus(prev)
}
