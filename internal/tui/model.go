// Package tui implements the interactive playground screen.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/reszplay/internal/analytics"
	"github.com/alexisbeaulieu97/reszplay/internal/clipboard"
	"github.com/alexisbeaulieu97/reszplay/internal/events"
	"github.com/alexisbeaulieu97/reszplay/internal/logger"
	"github.com/alexisbeaulieu97/reszplay/internal/playground"
	"github.com/alexisbeaulieu97/reszplay/internal/ports"
	"github.com/alexisbeaulieu97/reszplay/internal/preview"
)

// field names the numeric value being edited.
type field int

const (
	fieldNone field = iota
	fieldWidth
	fieldHeight
	fieldTension
	fieldFriction
	fieldMass
	fieldSnap
	fieldMinWidth
	fieldMinHeight
	fieldMaxWidth
	fieldMaxHeight
)

func (f field) label() string {
	switch f {
	case fieldWidth:
		return "Width"
	case fieldHeight:
		return "Height"
	case fieldTension:
		return "Tension"
	case fieldFriction:
		return "Friction"
	case fieldMass:
		return "Mass"
	case fieldSnap:
		return "Grid size"
	case fieldMinWidth:
		return "Min width"
	case fieldMinHeight:
		return "Min height"
	case fieldMaxWidth:
		return "Max width"
	case fieldMaxHeight:
		return "Max height"
	default:
		return ""
	}
}

// Options wires the playground to its collaborators. Zero values fall back
// to the defaults noted per field.
type Options struct {
	// Initial configuration; defaults to playground.Default().
	Initial *playground.Config
	// Loader acquires the live preview capability; nil means unavailable.
	Loader    preview.Loader
	Logger    ports.Logger
	Publisher ports.EventPublisher
	// Copier defaults to the system clipboard.
	Copier *clipboard.Copier
}

// Model is the Bubble Tea state of the playground screen.
type Model struct {
	ctx       context.Context
	store     *playground.Store
	loader    preview.Loader
	preview   *preview.Preview
	logger    ports.Logger
	publisher ports.EventPublisher
	copier    *clipboard.Copier
	beacon    *analytics.Beacon

	keys       keyMap
	help       help.Model
	spinner    spinner.Model
	input      textinput.Model
	exportView viewport.Model

	editing    field
	activeDir  playground.Direction
	exportOpen bool
	snippet    string
	copied     bool
	copySeq    int
	dragSeq    int
	animating  bool
	loading    bool

	showError bool
	errorMsg  string

	width  int
	height int
}

// NewModel creates the playground model.
func NewModel(ctx context.Context, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOp()
	}
	publisher := opts.Publisher
	if publisher == nil {
		publisher = events.NewLoggingPublisher(log)
	}
	copier := opts.Copier
	if copier == nil {
		copier = clipboard.NewCopier(nil, log)
	}

	store := playground.NewStore()
	if opts.Initial != nil {
		store = playground.NewStoreWith(*opts.Initial)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	in := textinput.New()
	in.CharLimit = 8
	in.Prompt = "› "

	m := Model{
		ctx:        ctx,
		store:      store,
		loader:     opts.Loader,
		logger:     log.With("component", "tui"),
		publisher:  publisher,
		copier:     copier,
		beacon:     analytics.NewBeacon(publisher, "export"),
		keys:       defaultKeyMap(),
		help:       help.New(),
		spinner:    s,
		input:      in,
		exportView: viewport.New(80, 20),
		loading:    true,
		width:      minWidth,
		height:     minHeight,
	}
	m.activeDir = firstHandle(store.Get())
	return m
}

// Init starts the spinner and the capability load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCapabilityCmd(m.ctx, m.loader))
}

// Config returns the current playground configuration.
func (m Model) Config() playground.Config {
	return m.store.Get()
}

// Loading reports whether the capability load is still pending.
func (m Model) Loading() bool {
	return m.loading
}

// Copied reports whether the last copy succeeded within the display window.
func (m Model) Copied() bool {
	return m.copied
}

// ExportOpen reports whether the export pane is shown.
func (m Model) ExportOpen() bool {
	return m.exportOpen
}

// Snippet returns the snippet shown in the export pane.
func (m Model) Snippet() string {
	return m.snippet
}

// ActiveHandle returns the handle moved by the arrow keys.
func (m Model) ActiveHandle() playground.Direction {
	return m.activeDir
}

// LiveSize returns the last size reported by the preview.
func (m Model) LiveSize() playground.ResizeEvent {
	return m.store.LiveSize()
}

func firstHandle(cfg playground.Config) playground.Direction {
	handles := cfg.CanonicalHandles()
	if len(handles) == 0 {
		return ""
	}
	for _, d := range handles {
		if d == playground.DirSE {
			return d
		}
	}
	return handles[0]
}

func (m *Model) publish(eventType string, fields map[string]interface{}) {
	_ = m.publisher.Publish(m.ctx, events.New(eventType, fields))
}
