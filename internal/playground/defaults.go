package playground

import "strconv"

const (
	// DefaultWidth and DefaultHeight size the preview at startup.
	DefaultWidth  = 400
	DefaultHeight = 300

	// DefaultSnapIncrement is used when snapping is switched on.
	DefaultSnapIncrement = 10
	// MaxSnapIncrement is the largest grid the input field accepts.
	MaxSnapIncrement = 200

	// DefaultAspectRatio is preselected when the ratio is first enabled.
	DefaultAspectRatio = 1.33
)

// Default returns the configuration the playground starts with.
func Default() Config {
	return Config{
		PanelKind:       PanelKindModal,
		InitialWidth:    DefaultWidth,
		InitialHeight:   DefaultHeight,
		SpringSelection: SpringSmooth,
		SpringParams:    springPresets[SpringSmooth],
		VisibleHandles:  []Direction{DirSE, DirE, DirS},
		Anchor:          AnchorCenter,
		Constraints: Constraints{
			Min: &Size{Width: Float(200), Height: Float(150)},
			Max: &Size{Width: Float(800), Height: Float(600)},
		},
	}
}

// AspectRatioChoice is one entry of the ratio picker.
type AspectRatioChoice struct {
	Value float64
	Label string
}

// AspectRatioChoices lists the ratios offered by the picker.
var AspectRatioChoices = []AspectRatioChoice{
	{Value: 1, Label: "1:1 (Square)"},
	{Value: 1.33, Label: "4:3 (Standard)"},
	{Value: 1.5, Label: "3:2 (Photo)"},
	{Value: 1.78, Label: "16:9 (Widescreen)"},
	{Value: 2, Label: "2:1 (Cinematic)"},
	{Value: 0.75, Label: "3:4 (Portrait)"},
	{Value: 0.56, Label: "9:16 (Mobile)"},
}

var ratioLabels = map[float64]string{
	1:    "1:1",
	1.33: "4:3",
	1.5:  "3:2",
	1.78: "16:9",
	2:    "2:1",
	0.75: "3:4",
	0.56: "9:16",
}

// RatioLabel returns the short w:h label for known ratios and the value
// with two decimals otherwise.
func RatioLabel(ratio float64) string {
	if label, ok := ratioLabels[ratio]; ok {
		return label
	}
	return strconv.FormatFloat(ratio, 'f', 2, 64)
}
