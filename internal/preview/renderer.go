package preview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reszplay/internal/playground"
)

const (
	// pixels represented by one terminal cell
	pxPerColumn = 8.0
	pxPerRow    = 16.0

	minBoxColumns = 12
	minBoxRows    = 5

	// used when the area is not known yet
	maxBoxColumns = 160
	maxBoxRows    = 60
)

// Frame is an immutable snapshot handed to a renderer.
type Frame struct {
	Config       playground.Config
	Width        float64
	Height       float64
	Dragging     bool
	ActiveHandle playground.Direction
	AreaWidth    int
	AreaHeight   int
}

// Renderer draws one frame of the preview.
type Renderer interface {
	Live() bool
	Render(frame Frame) string
}

// NewRenderer picks the live or the mock renderer from a load result.
func NewRenderer(result LoadResult) Renderer {
	if result.Available() {
		return liveRenderer{name: result.Capability.Name()}
	}
	return fallbackRenderer{reason: result.Reason}
}

type liveRenderer struct {
	name string
}

func (r liveRenderer) Live() bool { return true }

func (r liveRenderer) Render(f Frame) string {
	title := f.Config.PanelKind.Label()
	if f.Dragging {
		title += " ⇲"
	}
	box := drawBox(f, f.Width, f.Height, title, boxStyle)
	return composeArea(f, box, InfoLines(f.Config, f.Width, f.Height))
}

type fallbackRenderer struct {
	reason string
}

func (r fallbackRenderer) Live() bool { return false }

// Render draws the configured initial size; live resize events are not
// available without a capability.
func (r fallbackRenderer) Render(f Frame) string {
	cfg := f.Config
	box := drawBox(f, cfg.InitialWidth, cfg.InitialHeight, cfg.PanelKind.Label()+" (Mock)", mockBoxStyle)

	note := "Install resz to see live preview"
	if strings.TrimSpace(r.reason) != "" {
		note = "Mock Preview (resz not available)"
	}
	info := append(InfoLines(cfg, cfg.InitialWidth, cfg.InitialHeight), warnStyle.Render(note))
	if r.reason != "" {
		info = append(info, mutedStyle.Render(r.reason))
	}
	return composeArea(f, box, info)
}

// InfoLines describes the configuration next to the preview.
func InfoLines(cfg playground.Config, width, height float64) []string {
	defaults := playground.Default().Constraints
	lines := []string{
		sizeStyle.Render(fmt.Sprintf("%d × %d", round(width), round(height))),
		mutedStyle.Render("Spring: " + string(cfg.SpringSelection)),
		mutedStyle.Render("Handles: " + joinHandles(cfg.VisibleHandles)),
		mutedStyle.Render(fmt.Sprintf("Min: %s | Max: %s",
			boundLabel(cfg.UseMinConstraints, cfg.Constraints.Min, defaults.Min),
			boundLabel(cfg.UseMaxConstraints, cfg.Constraints.Max, defaults.Max))),
	}

	ratio := "Free"
	if cfg.UseAspectRatio {
		value := playground.DefaultAspectRatio
		if cfg.Constraints.AspectRatio != nil && *cfg.Constraints.AspectRatio != 0 {
			value = *cfg.Constraints.AspectRatio
		}
		ratio = playground.RatioLabel(value)
	}
	lines = append(lines, mutedStyle.Render("Ratio: "+ratio))

	if cfg.Anchor != playground.AnchorCenter {
		lines = append(lines, mutedStyle.Render("Anchor: "+string(cfg.Anchor)))
	}
	if cfg.Snap != nil {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("Snap: %dpx grid", cfg.Snap.Increment)))
	}
	return lines
}

// boundLabel fills unset dimensions from fallback.
func boundLabel(enabled bool, size, fallback *playground.Size) string {
	if !enabled {
		return "None"
	}
	w, h := *fallback.Width, *fallback.Height
	if size != nil {
		if size.Width != nil && *size.Width != 0 {
			w = *size.Width
		}
		if size.Height != nil && *size.Height != 0 {
			h = *size.Height
		}
	}
	return fmt.Sprintf("%d×%d", round(w), round(h))
}

func joinHandles(handles []playground.Direction) string {
	if len(handles) == 0 {
		return "none"
	}
	parts := make([]string, len(handles))
	for i, h := range handles {
		parts[i] = string(h)
	}
	return strings.Join(parts, ", ")
}

// drawBox paints the region with its handles as a grid of cells.
func drawBox(f Frame, width, height float64, title string, style lipgloss.Style) string {
	cols, rows := cellSize(width, height, f.AreaWidth, f.AreaHeight)

	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = make([]rune, cols)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	for x := 1; x < cols-1; x++ {
		grid[0][x] = '─'
		grid[rows-1][x] = '─'
	}
	for y := 1; y < rows-1; y++ {
		grid[y][0] = '│'
		grid[y][cols-1] = '│'
	}
	grid[0][0], grid[0][cols-1] = '╭', '╮'
	grid[rows-1][0], grid[rows-1][cols-1] = '╰', '╯'

	writeCentered(grid, rows/2, title)

	for _, dir := range f.Config.CanonicalHandles() {
		x, y := handleCell(dir, cols, rows)
		glyph := '■'
		if dir == f.ActiveHandle {
			glyph = '◆'
		}
		grid[y][x] = glyph
	}

	lines := make([]string, rows)
	for y, row := range grid {
		lines[y] = string(row)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func writeCentered(grid [][]rune, y int, text string) {
	if y <= 0 || y >= len(grid)-1 {
		return
	}
	runes := []rune(text)
	inner := len(grid[y]) - 2
	if len(runes) > inner {
		runes = runes[:inner]
	}
	start := 1 + (inner-len(runes))/2
	copy(grid[y][start:], runes)
}

func handleCell(dir playground.Direction, cols, rows int) (int, int) {
	x, y := cols/2, rows/2
	if dir.HasNorth() {
		y = 0
	}
	if dir.HasSouth() {
		y = rows - 1
	}
	if dir.HasWest() {
		x = 0
	}
	if dir.HasEast() {
		x = cols - 1
	}
	return x, y
}

// cellSize converts pixels to cells, keeping the box inside the area. An
// unknown or tiny area falls back to a fixed ceiling so the grid stays
// bounded whatever the configured size. Non-positive or NaN sizes collapse
// to the minimum box.
func cellSize(width, height float64, areaW, areaH int) (int, int) {
	maxCols := max(areaW, minBoxColumns)
	if areaW <= 0 {
		maxCols = maxBoxColumns
	}
	maxRows := max(areaH, minBoxRows)
	if areaH <= 0 {
		maxRows = maxBoxRows
	}
	return toCells(width, pxPerColumn, minBoxColumns, maxCols),
		toCells(height, pxPerRow, minBoxRows, maxRows)
}

func toCells(px, perCell float64, lo, hi int) int {
	if !(px > 0) {
		return lo
	}
	cells := math.Round(px / perCell)
	if cells > float64(hi) {
		return hi
	}
	if cells < float64(lo) {
		return lo
	}
	return int(cells)
}

// composeArea places the box inside the area according to the anchor and
// puts the info lines underneath.
func composeArea(f Frame, box string, info []string) string {
	infoBlock := strings.Join(info, "\n")
	if f.AreaWidth <= 0 || f.AreaHeight <= 0 {
		return lipgloss.JoinVertical(lipgloss.Left, box, "", infoBlock)
	}

	boxArea := f.AreaHeight - lipgloss.Height(infoBlock) - 1
	if boxArea < lipgloss.Height(box) {
		boxArea = lipgloss.Height(box)
	}
	h, v := anchorPosition(f.Config.Anchor)
	placed := lipgloss.Place(f.AreaWidth, boxArea, h, v, box)
	return lipgloss.JoinVertical(lipgloss.Left, placed, "", lipgloss.PlaceHorizontal(f.AreaWidth, lipgloss.Right, infoBlock))
}

func anchorPosition(a playground.Anchor) (lipgloss.Position, lipgloss.Position) {
	h, v := lipgloss.Center, lipgloss.Center
	if a == playground.AnchorCenter {
		return h, v
	}
	dir := playground.Direction(a)
	if dir.HasWest() {
		h = lipgloss.Left
	}
	if dir.HasEast() {
		h = lipgloss.Right
	}
	if dir.HasNorth() {
		v = lipgloss.Top
	}
	if dir.HasSouth() {
		v = lipgloss.Bottom
	}
	return h, v
}

func round(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

var (
	boxStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	mockBoxStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sizeStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)
