package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reszplay/internal/playground"
)

const controlsWidth = 36

// View renders the current model state.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.showError {
		content.WriteString(errorBannerStyle.Render(m.errorMsg))
		content.WriteString("\n")
	}

	if m.exportOpen {
		content.WriteString(m.renderExport())
	} else {
		content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderControls(), m.renderPreview()))
	}
	content.WriteString("\n")
	content.WriteString(m.renderFooter())

	return content.String()
}

// renderHeader renders the title and the panel kind tabs.
func (m Model) renderHeader() string {
	cfg := m.store.Get()
	tabs := make([]string, 0, len(playground.PanelKinds))
	for _, kind := range playground.PanelKinds {
		if kind == cfg.PanelKind {
			tabs = append(tabs, activeTabStyle.Render(kind.Label()))
			continue
		}
		tabs = append(tabs, tabStyle.Render(kind.Label()))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, append([]string{titleStyle.Render("resz playground")}, tabs...)...)
	return headerStyle.Render(row)
}

// renderControls lists every setting with its current value.
func (m Model) renderControls() string {
	cfg := m.store.Get()
	lines := []string{
		row("Size", fmt.Sprintf("%s × %s", formatValue(cfg.InitialWidth), formatValue(cfg.InitialHeight))),
		row("Spring", string(cfg.SpringSelection)),
		row("  tension", formatValue(cfg.SpringParams.Tension)),
		row("  friction", formatValue(cfg.SpringParams.Friction)),
		row("  mass", formatValue(cfg.SpringParams.Mass)),
		row("Handles", renderHandles(cfg)),
		row("Active", activeLabel(m.activeDir)),
		row("Anchor", string(cfg.Anchor)),
		row("Min", toggled(cfg.UseMinConstraints, sizeLabel(cfg.Constraints.Min))),
		row("Max", toggled(cfg.UseMaxConstraints, sizeLabel(cfg.Constraints.Max))),
		row("Ratio", toggled(cfg.UseAspectRatio, ratioLabel(cfg.Constraints.AspectRatio))),
		row("Snap", snapLabel(cfg.Snap)),
	}

	if m.preview != nil && m.preview.Live() {
		live := m.store.LiveSize()
		state := ""
		if live.IsDragging {
			state = " dragging"
		}
		lines = append(lines, "", row("Live", fmt.Sprintf("%.0f × %.0f%s", live.Width, live.Height, state)))
	}

	if m.editing != fieldNone {
		lines = append(lines, "", m.editing.label()+":", m.input.View())
	}

	return controlsStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderPreview() string {
	areaW := m.width - controlsWidth - 4
	areaH := m.height - 8
	if m.loading || m.preview == nil {
		msg := fmt.Sprintf("%s Loading resz…", m.spinner.View())
		if areaW <= 0 || areaH <= 0 {
			return msg
		}
		return lipgloss.Place(areaW, areaH, lipgloss.Center, lipgloss.Center, msg)
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(m.preview.View(m.store.Get(), m.activeDir, areaW, areaH))
}

func (m Model) renderExport() string {
	title := titleStyle.Render("Export code")
	if m.copied {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, copiedStyle.Render("✓ Copied!"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, exportBoxStyle.Render(m.exportView.View()))
}

func (m Model) renderFooter() string {
	switch {
	case m.editing != fieldNone:
		return footerStyle.Render(m.help.View(editKeyMap{keys: m.keys}))
	case m.exportOpen:
		return footerStyle.Render(m.help.View(exportKeyMap{keys: m.keys}))
	default:
		return footerStyle.Render(m.help.View(m.keys))
	}
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func renderHandles(cfg playground.Config) string {
	parts := make([]string, len(playground.CanonicalDirections))
	for i, dir := range playground.CanonicalDirections {
		text := fmt.Sprintf("%d%s", i+1, dir)
		if cfg.HasHandle(dir) {
			parts[i] = handleOnStyle.Render(text)
		} else {
			parts[i] = offStyle.Render(text)
		}
	}
	return strings.Join(parts, " ")
}

func activeLabel(dir playground.Direction) string {
	if dir == "" {
		return "none"
	}
	return string(dir)
}

func toggled(on bool, value string) string {
	if on {
		return onStyle.Render("on") + " " + value
	}
	return offStyle.Render("off") + " " + value
}

func sizeLabel(s *playground.Size) string {
	if s == nil {
		return "-"
	}
	w, h := "-", "-"
	if s.Width != nil {
		w = formatValue(*s.Width)
	}
	if s.Height != nil {
		h = formatValue(*s.Height)
	}
	return w + "×" + h
}

func ratioLabel(r *float64) string {
	if r == nil {
		return playground.RatioLabel(playground.DefaultAspectRatio)
	}
	return playground.RatioLabel(*r)
}

func snapLabel(s *playground.Snap) string {
	if s == nil {
		return offStyle.Render("off")
	}
	return onStyle.Render("on") + fmt.Sprintf(" %dpx", s.Increment)
}
