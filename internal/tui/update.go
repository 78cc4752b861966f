package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/reszplay/internal/export"
	"github.com/alexisbeaulieu97/reszplay/internal/playground"
	"github.com/alexisbeaulieu97/reszplay/internal/ports"
	"github.com/alexisbeaulieu97/reszplay/internal/preview"
)

const (
	minWidth  = 80
	minHeight = 24

	dragStep     = 10.0
	dragStepFast = 50.0
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.showError = false
			m.errorMsg = ""
		}
		m.resizeExport()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case LoadedMsg:
		return m.handleLoaded(msg)

	case frameMsg:
		return m.stepFrame()

	case releaseMsg:
		if msg.seq != m.dragSeq || m.preview == nil {
			return m, nil
		}
		m.preview.Release()
		m.drainResize()
		cmd := m.animate()
		return m, cmd

	case CopyResultMsg:
		if !msg.OK {
			m.copied = false
			return m, nil
		}
		m.copied = true
		m.copySeq++
		m.beacon.CopyCode(m.ctx)
		return m, copiedExpiredCmd(m.copySeq)

	case copiedExpiredMsg:
		if msg.seq == m.copySeq {
			m.copied = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleLoaded(msg LoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.preview = preview.New(msg.Result)

	if msg.Result.Available() {
		name := msg.Result.Capability.Name()
		m.logger.Info(m.ctx, "live preview ready", "capability", name)
		m.publish(ports.EventPreviewLoaded, map[string]interface{}{"capability": name})
	} else {
		m.logger.Warn(m.ctx, "live preview unavailable, using mock", "reason", msg.Result.Reason)
		m.publish(ports.EventPreviewUnavailable, map[string]interface{}{"reason": msg.Result.Reason})
	}

	cmd := m.syncPreview()
	return m, cmd
}

func (m Model) stepFrame() (tea.Model, tea.Cmd) {
	if m.preview == nil {
		m.animating = false
		return m, nil
	}
	more := m.preview.Step()
	m.drainResize()
	if more {
		return m, frameCmd()
	}
	m.animating = false
	return m, nil
}

// handleKeyPress routes keys to the open overlay or the main screen.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.editing != fieldNone {
		return m.handleEditKeys(msg)
	}
	if m.exportOpen {
		return m.handleExportKeys(msg)
	}
	return m.handleMainKeys(msg)
}

func (m Model) handleMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cfg := m.store.Get()
	defaults := playground.Default().Constraints

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextPanel):
		m.store.SetPanelKind(cyclePanel(cfg.PanelKind, 1))
		m.activeDir = firstHandle(m.store.Get())

	case key.Matches(msg, m.keys.PrevPanel):
		m.store.SetPanelKind(cyclePanel(cfg.PanelKind, -1))
		m.activeDir = firstHandle(m.store.Get())

	case key.Matches(msg, m.keys.CycleSpring):
		m.store.SetSpringPreset(cycleSpring(cfg.SpringSelection))

	case key.Matches(msg, m.keys.Tension):
		return m.startEdit(fieldTension, formatValue(cfg.SpringParams.Tension))
	case key.Matches(msg, m.keys.Friction):
		return m.startEdit(fieldFriction, formatValue(cfg.SpringParams.Friction))
	case key.Matches(msg, m.keys.Mass):
		return m.startEdit(fieldMass, formatValue(cfg.SpringParams.Mass))
	case key.Matches(msg, m.keys.Width):
		return m.startEdit(fieldWidth, formatValue(cfg.InitialWidth))
	case key.Matches(msg, m.keys.Height):
		return m.startEdit(fieldHeight, formatValue(cfg.InitialHeight))
	case key.Matches(msg, m.keys.SnapSize):
		if cfg.Snap == nil {
			return m, nil
		}
		return m.startEdit(fieldSnap, strconv.Itoa(cfg.Snap.Increment))

	case key.Matches(msg, m.keys.ToggleHand):
		idx, err := strconv.Atoi(msg.String())
		if err != nil || idx < 1 || idx > len(playground.CanonicalDirections) {
			return m, nil
		}
		m.store.ToggleHandle(playground.CanonicalDirections[idx-1])
		m.activeDir = keepActive(m.store.Get(), m.activeDir)

	case key.Matches(msg, m.keys.NextHandle):
		m.activeDir = cycleHandle(cfg, m.activeDir, 1)
		return m, nil
	case key.Matches(msg, m.keys.PrevHandle):
		m.activeDir = cycleHandle(cfg, m.activeDir, -1)
		return m, nil

	case key.Matches(msg, m.keys.DragUp):
		return m.drag(0, -dragAmount(msg))
	case key.Matches(msg, m.keys.DragDown):
		return m.drag(0, dragAmount(msg))
	case key.Matches(msg, m.keys.DragLeft):
		return m.drag(-dragAmount(msg), 0)
	case key.Matches(msg, m.keys.DragRight):
		return m.drag(dragAmount(msg), 0)

	case key.Matches(msg, m.keys.Anchor):
		m.store.SetAnchor(cycleAnchor(cfg.Anchor))

	case key.Matches(msg, m.keys.MinBounds):
		on := !cfg.UseMinConstraints
		m.store.Patch(playground.Patch{UseMinConstraints: &on})
	case key.Matches(msg, m.keys.MaxBounds):
		on := !cfg.UseMaxConstraints
		m.store.Patch(playground.Patch{UseMaxConstraints: &on})
	case key.Matches(msg, m.keys.MinWidth):
		return m.startEdit(fieldMinWidth, formatValue(boundValue(cfg.Constraints.Min, defaults.Min, widthOf)))
	case key.Matches(msg, m.keys.MinHeight):
		return m.startEdit(fieldMinHeight, formatValue(boundValue(cfg.Constraints.Min, defaults.Min, heightOf)))
	case key.Matches(msg, m.keys.MaxWidth):
		return m.startEdit(fieldMaxWidth, formatValue(boundValue(cfg.Constraints.Max, defaults.Max, widthOf)))
	case key.Matches(msg, m.keys.MaxHeight):
		return m.startEdit(fieldMaxHeight, formatValue(boundValue(cfg.Constraints.Max, defaults.Max, heightOf)))
	case key.Matches(msg, m.keys.Ratio):
		if !cfg.UseAspectRatio && cfg.Constraints.AspectRatio == nil {
			m.store.SetAspectRatio(playground.DefaultAspectRatio)
		}
		m.store.SetConstraintFlags(cfg.UseMinConstraints, cfg.UseMaxConstraints, !cfg.UseAspectRatio)
	case key.Matches(msg, m.keys.CycleRatio):
		if !cfg.UseAspectRatio {
			return m, nil
		}
		m.store.SetAspectRatio(cycleRatio(cfg.Constraints.AspectRatio))

	case key.Matches(msg, m.keys.Snap):
		m.store.EnableSnap(cfg.Snap == nil)

	case key.Matches(msg, m.keys.Reset):
		m.store.Reset()
		m.activeDir = firstHandle(m.store.Get())
		m.publish(ports.EventConfigReset, nil)

	case key.Matches(msg, m.keys.Export):
		return m.openExport()

	default:
		return m, nil
	}

	cmd := m.syncPreview()
	return m, cmd
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.stopEdit()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.applyEdit(m.input.Value())
		m.stopEdit()
		cmd := m.syncPreview()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleExportKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Export):
		m.exportOpen = false
		m.copied = false
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(m.ctx, m.copier, m.snippet)
	}

	var cmd tea.Cmd
	m.exportView, cmd = m.exportView.Update(msg)
	return m, cmd
}

func (m Model) startEdit(f field, value string) (tea.Model, tea.Cmd) {
	m.editing = f
	m.input.Placeholder = f.label()
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m *Model) stopEdit() {
	m.editing = fieldNone
	m.input.Blur()
	m.input.Reset()
}

// applyEdit coerces the typed text; malformed input keeps the prior value.
func (m *Model) applyEdit(text string) {
	cfg := m.store.Get()
	switch m.editing {
	case fieldWidth:
		m.store.SetDimensions(playground.ParseDimension(text, cfg.InitialWidth), cfg.InitialHeight)
	case fieldHeight:
		m.store.SetDimensions(cfg.InitialWidth, playground.ParseDimension(text, cfg.InitialHeight))
	case fieldTension:
		v := playground.ParseSpringValue(text, cfg.SpringParams.Tension)
		m.store.SetSpringParam(playground.SpringParamsPatch{Tension: &v})
	case fieldFriction:
		v := playground.ParseSpringValue(text, cfg.SpringParams.Friction)
		m.store.SetSpringParam(playground.SpringParamsPatch{Friction: &v})
	case fieldMass:
		v := playground.ParseSpringValue(text, cfg.SpringParams.Mass)
		m.store.SetSpringParam(playground.SpringParamsPatch{Mass: &v})
	case fieldSnap:
		if inc, ok := playground.ParseIncrement(text); ok {
			m.store.SetSnapIncrement(inc)
		}
	case fieldMinWidth, fieldMinHeight, fieldMaxWidth, fieldMaxHeight:
		m.store.SetConstraints(editBound(cfg.Constraints, m.editing, text))
	}
}

// editBound returns c with one bound dimension replaced by the coerced
// text. Unset dimensions of the edited bound are filled from the defaults
// so the whole block is written at once.
func editBound(c playground.Constraints, f field, text string) playground.Constraints {
	defaults := playground.Default().Constraints
	bound, fallback := &c.Min, defaults.Min
	if f == fieldMaxWidth || f == fieldMaxHeight {
		bound, fallback = &c.Max, defaults.Max
	}

	w := boundValue(*bound, fallback, widthOf)
	h := boundValue(*bound, fallback, heightOf)
	if f == fieldMinWidth || f == fieldMaxWidth {
		w = playground.ParseDimension(text, w)
	} else {
		h = playground.ParseDimension(text, h)
	}
	*bound = &playground.Size{Width: playground.Float(w), Height: playground.Float(h)}
	return c
}

func widthOf(s *playground.Size) *float64  { return s.Width }
func heightOf(s *playground.Size) *float64 { return s.Height }

// boundValue reads one dimension of size, or of fallback when unset.
func boundValue(size, fallback *playground.Size, axis func(*playground.Size) *float64) float64 {
	if size != nil {
		if v := axis(size); v != nil && *v != 0 {
			return *v
		}
	}
	return *axis(fallback)
}

func (m Model) openExport() (tea.Model, tea.Cmd) {
	cfg := m.store.Get()
	m.snippet = export.Serialize(cfg)
	m.exportOpen = true
	m.copied = false
	m.resizeExport()
	m.exportView.SetContent(export.HighlightOrPlain(m.snippet, m.exportView.Width))
	m.exportView.GotoTop()
	m.publish(ports.EventExportOpened, map[string]interface{}{"panel_kind": string(cfg.PanelKind)})
	return m, nil
}

func (m *Model) resizeExport() {
	w := m.width - 8
	if w < 20 {
		w = 20
	}
	h := m.height - 10
	if h < 5 {
		h = 5
	}
	m.exportView.Width = w
	m.exportView.Height = h
}

// drag moves the active handle by one keyboard step. The drag ends once no
// further step arrives within releaseDelay.
func (m Model) drag(dx, dy float64) (tea.Model, tea.Cmd) {
	if m.preview == nil || !m.preview.Live() || m.activeDir == "" {
		return m, nil
	}
	m.preview.Drag(m.activeDir, dx, dy)
	m.drainResize()
	m.dragSeq++
	cmd := m.animate()
	return m, tea.Batch(cmd, releaseCmd(m.dragSeq))
}

// syncPreview remounts the preview when needed and starts the animation.
func (m *Model) syncPreview() tea.Cmd {
	if m.preview == nil {
		return nil
	}
	if m.preview.Sync(m.store.Get(), m.store.LiveSize()) {
		m.logger.Debug(m.ctx, "preview remounted")
	}
	m.drainResize()
	return m.animate()
}

func (m *Model) animate() tea.Cmd {
	if m.animating || m.preview == nil || !m.preview.Live() {
		return nil
	}
	m.animating = true
	return frameCmd()
}

// drainResize feeds the preview's resize reports into the store.
func (m *Model) drainResize() {
	if m.preview == nil {
		return
	}
	for _, ev := range m.preview.Drain() {
		m.store.ApplyResize(ev)
	}
}

func dragAmount(msg tea.KeyMsg) float64 {
	if strings.HasPrefix(msg.String(), "shift+") {
		return dragStepFast
	}
	return dragStep
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func cyclePanel(current playground.PanelKind, step int) playground.PanelKind {
	kinds := playground.PanelKinds
	for i, k := range kinds {
		if k == current {
			return kinds[(i+step+len(kinds))%len(kinds)]
		}
	}
	return kinds[0]
}

func cycleSpring(current playground.SpringSelection) playground.SpringSelection {
	sels := playground.SpringSelections
	for i, s := range sels {
		if s == current {
			return sels[(i+1)%len(sels)]
		}
	}
	return playground.SpringSmooth
}

func cycleAnchor(current playground.Anchor) playground.Anchor {
	anchors := playground.Anchors
	for i, a := range anchors {
		if a == current {
			return anchors[(i+1)%len(anchors)]
		}
	}
	return playground.AnchorCenter
}

func cycleRatio(current *float64) float64 {
	choices := playground.AspectRatioChoices
	if current != nil {
		for i, c := range choices {
			if c.Value == *current {
				return choices[(i+1)%len(choices)].Value
			}
		}
	}
	return choices[0].Value
}

func cycleHandle(cfg playground.Config, current playground.Direction, step int) playground.Direction {
	handles := cfg.CanonicalHandles()
	if len(handles) == 0 {
		return ""
	}
	for i, h := range handles {
		if h == current {
			return handles[(i+step+len(handles))%len(handles)]
		}
	}
	return handles[0]
}

func keepActive(cfg playground.Config, current playground.Direction) playground.Direction {
	if current != "" && cfg.HasHandle(current) {
		return current
	}
	return firstHandle(cfg)
}
