package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/enlace/internal/records"
)

// View renders the module body: title bar, then the active sub-view.
func (s *section[T]) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	bar := s.renderTitleBar(theme, styles, width)
	bodyHeight := max(height-lipgloss.Height(bar)-1, 3)

	if s.modal != nil {
		return lipgloss.JoinVertical(lipgloss.Left, bar, "", s.modal.View(theme, width, bodyHeight))
	}

	var body string
	switch s.mod.SubView() {
	case records.SubViewDetail:
		body = s.renderDetail(theme, styles, width)
	case records.SubViewForm:
		body = s.renderForm(theme, styles, width)
	default:
		body = s.renderList(theme, styles, width, bodyHeight)
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, "", body)
}

func (s *section[T]) renderTitleBar(theme Theme, styles Styles, width int) string {
	title := styles.Text.Bold(true).Render(s.schema.title)
	count := styles.MutedText.Render(fmt.Sprintf("  %d registros", s.mod.Collection().Len()))

	var modes []string
	for _, v := range []records.ViewMode{records.ViewList, records.ViewCards, records.ViewListView, records.ViewDashboard} {
		label := " " + v.Label() + " "
		if v == s.mod.ViewMode() {
			modes = append(modes, styles.Selected.Render(label))
		} else {
			modes = append(modes, styles.MutedText.Render(label))
		}
	}

	var search string
	switch {
	case s.searching:
		search = s.search.View()
	case s.mod.Term() != "":
		search = styles.AccentText.Render("/ " + s.mod.Term())
	default:
		search = styles.FaintText.Render("/ buscar")
	}

	left := title + count
	right := strings.Join(modes, "") + "  " + search
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 2)
	return left + strings.Repeat(" ", gap) + right
}

func (s *section[T]) renderList(theme Theme, styles Styles, width, height int) string {
	if s.mod.ViewMode() == records.ViewDashboard {
		return s.renderDashboard(theme, styles, width)
	}
	visible := s.mod.Visible()
	if len(visible) == 0 {
		return styles.MutedText.Render("No se encontraron resultados para \"" + s.mod.Term() + "\"")
	}
	hint := styles.FaintText.Render("enter ver detalle · e editar · d eliminar · n nuevo · v cambiar vista · / buscar")

	var body string
	switch s.mod.ViewMode() {
	case records.ViewCards:
		body = s.renderCards(theme, styles, visible, width)
	case records.ViewListView:
		body = s.renderLines(styles, visible, width)
	default:
		body = s.renderTable(styles, visible, width, height-2)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, "", hint)
}

func (s *section[T]) renderTable(styles Styles, visible []T, width, height int) string {
	var b strings.Builder
	header := make([]string, 0, len(s.schema.columns))
	for _, c := range s.schema.columns {
		header = append(header, fit(c.title, c.width))
	}
	b.WriteString(styles.AccentText.Bold(true).Render(truncate(strings.Join(header, " "), width)))
	b.WriteString("\n")

	// Scroll so the cursor stays visible.
	rows := max(height-1, 1)
	start := 0
	if s.cursor >= rows {
		start = s.cursor - rows + 1
	}
	end := min(start+rows, len(visible))
	for i := start; i < end; i++ {
		r := visible[i]
		cells := make([]string, 0, len(s.schema.columns))
		for _, c := range s.schema.columns {
			v := fit(c.value(r), c.width)
			if c.badge && i != s.cursor {
				v = styles.StatusStyle(c.value(r)).Render(v)
			}
			cells = append(cells, v)
		}
		line := strings.Join(cells, " ")
		if i == s.cursor {
			line = styles.Selected.Render(line)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *section[T]) renderCards(theme Theme, styles Styles, visible []T, width int) string {
	const cardWidth = 34
	perRow := max(width/(cardWidth+2), 1)

	var rows []string
	var row []string
	for i, r := range visible {
		c := s.schema.card(r)
		border := theme.Border
		if i == s.cursor {
			border = theme.BorderFocus
		}
		lines := []string{
			styles.Logo.Render(c.badge) + "  " + styles.Text.Bold(true).Render(truncate(c.title, cardWidth-8)),
			styles.MutedText.Render(truncate(c.subtitle, cardWidth-4)),
		}
		for _, l := range c.lines {
			lines = append(lines, styles.Text.Render(truncate(l, cardWidth-4)))
		}
		lines = append(lines, styles.StatusStyle(c.status).Render("● "+c.status))
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1).
			Width(cardWidth).
			Render(strings.Join(lines, "\n"))
		row = append(row, box)
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s *section[T]) renderLines(styles Styles, visible []T, width int) string {
	var b strings.Builder
	for i, r := range visible {
		title, sub := s.schema.line(r)
		marker := "  "
		titleStyle := styles.Text.Bold(true)
		if i == s.cursor {
			marker = "▸ "
			titleStyle = styles.AccentText.Bold(true)
		}
		b.WriteString(marker + titleStyle.Render(truncate(title, width-2)))
		b.WriteString("\n")
		b.WriteString("  " + styles.MutedText.Render(truncate(sub, width-2)))
		if i < len(visible)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *section[T]) renderDashboard(theme Theme, styles Styles, width int) string {
	kpis, groups := s.schema.dashboard(s.mod.Collection().All())

	boxWidth := max(min((width-len(kpis)*2)/max(len(kpis), 1), 24), 14)
	tiles := make([]string, 0, len(kpis))
	for _, k := range kpis {
		tiles = append(tiles, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)).
			Padding(0, 1).
			Width(boxWidth).
			Render(styles.Logo.Render(fmt.Sprintf("%d", k.value))+"\n"+styles.MutedText.Render(k.label)))
	}

	parts := []string{lipgloss.JoinHorizontal(lipgloss.Top, tiles...)}
	barWidth := max(min(width-40, 30), 10)
	for _, g := range groups {
		parts = append(parts, "", styles.AccentText.Bold(true).Render(g.title))
		top := 1
		if len(g.buckets) > 0 {
			top = g.buckets[0].Count
		}
		for _, bk := range g.buckets {
			n := bk.Count * barWidth / top
			value := fmt.Sprintf("%d", bk.Count)
			if g.percent {
				value = fmt.Sprintf("%.1f%%", bk.Percent)
			}
			parts = append(parts, fit(bk.Key, 24)+" "+
				styles.AccentText.Render(strings.Repeat("█", n))+
				styles.FaintText.Render(strings.Repeat("░", barWidth-n))+" "+
				styles.Text.Render(value))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *section[T]) renderDetail(theme Theme, styles Styles, width int) string {
	r, ok := s.mod.Selected()
	if !ok {
		return styles.MutedText.Render("Sin selección")
	}
	var lines []string
	for _, f := range s.schema.fields {
		v := orDash(f.value(r))
		style := styles.Text
		if len(f.options) > 0 {
			style = styles.StatusStyle(v)
		}
		lines = append(lines, styles.MutedText.Render(fit(f.label, 20))+style.Render(v))
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(0, 1).
		Width(min(width-2, 90)).
		Render(strings.Join(lines, "\n"))
	title := styles.Logo.Render(fmt.Sprintf("Detalle de %s #%d", s.schema.singular, r.RecordID()))
	hint := styles.FaintText.Render("e editar · d eliminar · esc volver")
	return lipgloss.JoinVertical(lipgloss.Left, title, box, "", hint)
}

func (s *section[T]) renderForm(theme Theme, styles Styles, width int) string {
	heading := s.schema.newTitle
	if s.mod.Editing() {
		heading = fmt.Sprintf("Editar %s #%d", s.schema.singular, s.draft.RecordID())
	}

	var lines []string
	for i, f := range s.schema.fields {
		label := styles.MutedText.Render(fit(f.label, 20))
		if i == s.focus {
			label = styles.AccentText.Bold(true).Render(fit(f.label, 20))
		}
		line := label + s.inputs[i].View()
		if len(f.options) > 0 {
			line = label + s.renderOptions(styles, f.options, s.inputs[i].Value(), i == s.focus)
		}
		switch {
		case s.missing[f.name]:
			line += "  " + styles.DangerText.Render("requerido")
		case s.invalid[f.name]:
			line += "  " + styles.DangerText.Render("valor no válido")
		}
		lines = append(lines, line)
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(0, 1).
		Width(min(width-2, 100)).
		Render(strings.Join(lines, "\n"))

	parts := []string{styles.Logo.Render(heading), box}
	if s.formErr != "" {
		parts = append(parts, styles.DangerText.Render(s.formErr))
	}
	parts = append(parts, "", styles.FaintText.Render("tab/shift+tab cambiar campo · ←/→ elegir opción · enter guardar · esc cancelar"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderOptions shows every allowed value of a selector field with the
// current one highlighted.
func (s *section[T]) renderOptions(styles Styles, options []string, current string, focused bool) string {
	parts := make([]string, 0, len(options))
	for _, opt := range options {
		switch {
		case opt == current && focused:
			parts = append(parts, styles.Selected.Render(opt))
		case opt == current:
			parts = append(parts, styles.AccentText.Bold(true).Render(opt))
		default:
			parts = append(parts, styles.FaintText.Render(opt))
		}
	}
	out := strings.Join(parts, styles.FaintText.Render(" | "))
	if !slices.Contains(options, current) {
		out = styles.DangerText.Render(orDash(current)) + "  " + out
	}
	return out
}
