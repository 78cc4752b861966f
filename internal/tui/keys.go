package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding of the playground screen.
type keyMap struct {
	NextPanel   key.Binding
	PrevPanel   key.Binding
	CycleSpring key.Binding
	Tension     key.Binding
	Friction    key.Binding
	Mass        key.Binding
	Width       key.Binding
	Height      key.Binding
	ToggleHand  key.Binding
	NextHandle  key.Binding
	PrevHandle  key.Binding
	DragUp      key.Binding
	DragDown    key.Binding
	DragLeft    key.Binding
	DragRight   key.Binding
	Anchor      key.Binding
	MinBounds   key.Binding
	MaxBounds   key.Binding
	MinWidth    key.Binding
	MinHeight   key.Binding
	MaxWidth    key.Binding
	MaxHeight   key.Binding
	Ratio       key.Binding
	CycleRatio  key.Binding
	Snap        key.Binding
	SnapSize    key.Binding
	Export      key.Binding
	Copy        key.Binding
	Reset       key.Binding
	Help        key.Binding
	Quit        key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextPanel:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		PrevPanel:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev panel")),
		CycleSpring: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "spring preset")),
		Tension:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tension")),
		Friction:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "friction")),
		Mass:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mass")),
		Width:       key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "width")),
		Height:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "height")),
		ToggleHand:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"), key.WithHelp("1-8", "toggle handle")),
		NextHandle:  key.NewBinding(key.WithKeys("."), key.WithHelp(".", "next handle")),
		PrevHandle:  key.NewBinding(key.WithKeys(","), key.WithHelp(",", "prev handle")),
		DragUp:      key.NewBinding(key.WithKeys("up", "shift+up"), key.WithHelp("↑", "drag")),
		DragDown:    key.NewBinding(key.WithKeys("down", "shift+down"), key.WithHelp("↓", "drag")),
		DragLeft:    key.NewBinding(key.WithKeys("left", "shift+left"), key.WithHelp("←", "drag")),
		DragRight:   key.NewBinding(key.WithKeys("right", "shift+right"), key.WithHelp("→", "drag")),
		Anchor:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "anchor")),
		MinBounds:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "min size")),
		MaxBounds:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "max size")),
		MinWidth:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "min width")),
		MinHeight:   key.NewBinding(key.WithKeys("I"), key.WithHelp("I", "min height")),
		MaxWidth:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "max width")),
		MaxHeight:   key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "max height")),
		Ratio:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "aspect ratio")),
		CycleRatio:  key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "next ratio")),
		Snap:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "snap")),
		SnapSize:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid size")),
		Export:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Copy:        key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy")),
		Reset:       key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPanel, k.CycleSpring, k.ToggleHand, k.DragRight, k.Export, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPanel, k.PrevPanel, k.Width, k.Height, k.Reset},
		{k.CycleSpring, k.Tension, k.Friction, k.Mass},
		{k.ToggleHand, k.NextHandle, k.PrevHandle, k.DragUp, k.DragDown, k.DragLeft, k.DragRight},
		{k.Anchor, k.MinBounds, k.MaxBounds, k.MinWidth, k.MinHeight, k.MaxWidth, k.MaxHeight},
		{k.Ratio, k.CycleRatio, k.Snap, k.SnapSize},
		{k.Export, k.Copy, k.Help, k.Quit},
	}
}

// exportKeyMap is shown while the export pane is open.
type exportKeyMap struct {
	keys keyMap
}

func (e exportKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{e.keys.Copy, e.keys.DragUp, e.keys.DragDown, e.keys.Cancel}
}

func (e exportKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{e.ShortHelp()}
}

// editKeyMap is shown while a numeric field is being edited.
type editKeyMap struct {
	keys keyMap
}

func (e editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{e.keys.Confirm, e.keys.Cancel}
}

func (e editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{e.ShortHelp()}
}
