package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/enlace/internal/prefs"
	"github.com/five82/enlace/internal/screen"
)

const sidebarWidth = 26

type navItem struct {
	target screen.Screen
	label  string
	key    string
}

var navItems = []navItem{
	{screen.UserAdmin, "Usuarios", "u"},
	{screen.ITRequests, "Solicitudes TI", "r"},
}

func screenLabel(s screen.Screen) string {
	for _, it := range navItems {
		if it.target == s {
			return it.label
		}
	}
	return s.String()
}

func layoutLabel(l prefs.MenuLayout) string {
	if l == prefs.Vertical {
		return "vertical"
	}
	return "horizontal"
}

// renderMain renders the navigation chrome around the active module.
func (m Model) renderMain() string {
	footer := m.renderFooter()
	contentHeight := max(m.height-lipgloss.Height(footer), 5)

	if m.prefs.MenuLayout == prefs.Vertical {
		sidebar := m.renderSidebar(contentHeight)
		width := max(m.width-sidebarWidth-2, 20)
		content := lipgloss.NewStyle().
			Padding(0, 1).
			Width(width).
			Render(m.activePanel().View(m.theme, width-2, contentHeight))
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content),
			footer)
	}

	header := m.renderHeader()
	content := lipgloss.NewStyle().
		Padding(1, 1, 0, 1).
		Render(m.activePanel().View(m.theme, max(m.width-2, 20), contentHeight-lipgloss.Height(header)-1))
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

// renderHeader renders the horizontal navigation bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	current := m.router.Current()

	parts := []string{bg.Render("ENLACE", styles.Logo)}
	for _, it := range navItems {
		label := it.key + " " + it.label
		if it.target == current {
			parts = append(parts, bg.Render("▌"+label, styles.Logo))
		} else {
			parts = append(parts, bg.Render(" "+label, styles.MutedText))
		}
	}
	left := bg.Join(parts, "   ")
	right := bg.Render("Administrador", styles.Text) + bg.Spaces(2) + bg.Render("L salir", styles.FaintText)

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + right)
}

// renderSidebar renders the vertical navigation column.
func (m Model) renderSidebar(height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	current := m.router.Current()
	inner := sidebarWidth - 2

	lines := []string{
		bg.FillLine(bg.Render("ENLACE", styles.Logo), inner),
		bg.FillLine(bg.Render("CHUBB Seguros", styles.MutedText), inner),
		bg.FillLine("", inner),
	}
	for _, it := range navItems {
		if it.target == current {
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Foreground(lipgloss.Color(m.theme.SelectionText)).
				Bold(true).
				Width(inner).
				Render(" "+it.key+"  "+it.label))
		} else {
			lines = append(lines, bg.FillLine(bg.Render(" "+it.key+"  "+it.label, styles.Text), inner))
		}
	}
	for len(lines) < height-2 {
		lines = append(lines, bg.FillLine("", inner))
	}
	lines = append(lines,
		bg.FillLine(bg.Render("Administrador", styles.Text), inner),
		bg.FillLine(bg.Render("L salir", styles.FaintText), inner))

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// renderFooter shows the status message or the global hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.status != "" {
		if m.statusErr {
			return styles.Footer.Render(styles.DangerText.Render(m.status))
		}
		return styles.Footer.Render(styles.SuccessText.Render(m.status))
	}
	hints := []string{"? ayuda", "m menú " + layoutLabel(m.prefs.MenuLayout.Toggle()), "T tema", "L cerrar sesión", "ctrl+c salir"}
	return styles.Footer.Render(strings.Join(hints, " · ") + styles.FaintText.Render("   "+m.theme.Name))
}

// renderLoader renders the transition screen shown between main screens.
func (m Model) renderLoader() string {
	styles := m.theme.Styles()
	target, _ := m.router.Pending()
	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.Logo.Render("E N L A C E"),
		"",
		m.spinner.View()+" "+styles.Text.Render("Cargando "+screenLabel(target)+"..."),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
