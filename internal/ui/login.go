package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/enlace/internal/auth"
	"github.com/five82/enlace/internal/screen"
)

func (m *Model) initAuthInputs() {
	rut := textinput.New()
	rut.Prompt = ""
	rut.Placeholder = "12.345.678-9"
	rut.CharLimit = 12

	clave := textinput.New()
	clave.Prompt = ""
	clave.Placeholder = "••••••••"
	clave.EchoMode = textinput.EchoPassword
	clave.EchoCharacter = '•'
	clave.CharLimit = 64

	m.loginInputs = []textinput.Model{rut, clave}
	m.loginInputs[0].Focus()

	rec := textinput.New()
	rec.Prompt = ""
	rec.Placeholder = "12.345.678-9"
	rec.CharLimit = 12
	m.recoveryInput = rec
}

func (m *Model) resetLogin() {
	for i := range m.loginInputs {
		m.loginInputs[i].Reset()
		m.loginInputs[i].Blur()
	}
	m.loginFocus = 0
	m.loginInputs[0].Focus()
	m.loginErr = ""
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login.InProgress() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Forgot):
		m.router.Navigate(screen.ForgotPassword)
		m.recovery.Reset()
		m.recoveryInput.Reset()
		m.recoveryErr = ""
		m.loginErr = ""
		m.status = ""
		return m, m.recoveryInput.Focus()

	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		m.loginInputs[m.loginFocus].Blur()
		m.loginFocus = 1 - m.loginFocus
		return m, m.loginInputs[m.loginFocus].Focus()

	case key.Matches(msg, m.keys.Submit):
		cmd, err := m.login.Submit(m.loginInputs[0].Value(), m.loginInputs[1].Value())
		if err != nil {
			m.loginErr = "Debe ingresar su RUT y contraseña"
			return m, nil
		}
		m.loginErr = ""
		m.status = ""
		return m, tea.Batch(cmd, frameCmd())
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

func (m Model) handleRecoveryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	backToLogin := func() (tea.Model, tea.Cmd) {
		m.router.Navigate(screen.Login)
		m.recovery.Reset()
		m.recoveryInput.Reset()
		m.recoveryInput.Blur()
		m.recoveryErr = ""
		return m, m.loginInputs[m.loginFocus].Focus()
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		return backToLogin()
	case key.Matches(msg, m.keys.Submit):
		if m.recovery.Submitted() {
			return backToLogin()
		}
		if err := m.recovery.Recover(m.recoveryInput.Value()); err != nil {
			m.recoveryErr = "Ingrese su RUT para continuar"
			return m, nil
		}
		m.recoveryErr = ""
		m.recoveryInput.Blur()
		m.logger.Info("password recovery requested", zap.String("rut", m.recovery.Identifier()))
		return m, nil
	}

	if m.recovery.Submitted() {
		return m, nil
	}
	var cmd tea.Cmd
	m.recoveryInput, cmd = m.recoveryInput.Update(msg)
	return m, cmd
}

// authBox renders a centered panel for the authentication screens.
func (m Model) authBox(content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Brand)).
		Padding(1, 3).
		Width(min(56, max(m.width-4, 30))).
		Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) brand(styles Styles) string {
	return styles.Logo.Render("E N L A C E") + "\n" + styles.MutedText.Render("Portal de Administración · CHUBB Seguros")
}

func (m Model) renderLogin() string {
	styles := m.theme.Styles()
	label := func(i int, text string) string {
		if i == m.loginFocus {
			return styles.AccentText.Bold(true).Render(fit(text, 12))
		}
		return styles.MutedText.Render(fit(text, 12))
	}

	parts := []string{
		m.brand(styles),
		"",
		label(0, "RUT") + m.loginInputs[0].View(),
		label(1, "Contraseña") + m.loginInputs[1].View(),
	}
	if m.loginErr != "" {
		parts = append(parts, "", styles.DangerText.Render(m.loginErr))
	}
	if m.status != "" {
		parts = append(parts, "", styles.MutedText.Render(m.status))
	}
	parts = append(parts, "",
		styles.FaintText.Render("enter ingresar · tab cambiar campo"),
		styles.FaintText.Render("ctrl+f ¿Olvidó su contraseña?"))
	return m.authBox(strings.Join(parts, "\n"))
}

func (m Model) renderLoginProgress() string {
	styles := m.theme.Styles()
	pct := m.login.Progress()
	phase := m.login.Phase()

	parts := []string{
		m.brand(styles),
		"",
		styles.Text.Bold(true).Render("Iniciando sesión"),
		m.progress.ViewAs(pct/100) + " " + styles.MutedText.Render(fmt.Sprintf("%3.0f%%", pct)),
		"",
	}
	for i, step := range auth.Steps() {
		n := auth.Phase(i + 1)
		switch {
		case phase > n || phase == auth.PhaseGranted:
			parts = append(parts, styles.SuccessText.Render("✓ "+step))
		case phase == n:
			parts = append(parts, styles.AccentText.Bold(true).Render("● "+step))
		default:
			parts = append(parts, styles.FaintText.Render("○ "+step))
		}
	}
	return m.authBox(strings.Join(parts, "\n"))
}

func (m Model) renderRecovery() string {
	styles := m.theme.Styles()
	parts := []string{
		m.brand(styles),
		"",
		styles.Text.Bold(true).Render("Recuperar contraseña"),
		"",
	}
	if m.recovery.Submitted() {
		parts = append(parts,
			styles.SuccessText.Render("Solicitud enviada"),
			styles.Text.Render("Si el RUT "+m.recovery.Identifier()+" está registrado,"),
			styles.Text.Render("recibirá instrucciones en su correo corporativo."),
			"",
			styles.FaintText.Render("enter/esc volver al inicio de sesión"))
		return m.authBox(strings.Join(parts, "\n"))
	}

	parts = append(parts,
		styles.MutedText.Render("Ingrese su RUT y le enviaremos las instrucciones."),
		"",
		styles.AccentText.Bold(true).Render(fit("RUT", 12))+m.recoveryInput.View())
	if m.recoveryErr != "" {
		parts = append(parts, "", styles.DangerText.Render(m.recoveryErr))
	}
	parts = append(parts, "", styles.FaintText.Render("enter enviar · esc volver"))
	return m.authBox(strings.Join(parts, "\n"))
}
