package config

// Document is a playground configuration as written in a YAML file. Absent
// fields keep the playground defaults.
type Document struct {
	Panel       string   `yaml:"panel,omitempty" validate:"omitempty,panel_kind"`
	Width       *float64 `yaml:"width,omitempty" validate:"omitempty,gt=0"`
	Height      *float64 `yaml:"height,omitempty" validate:"omitempty,gt=0"`
	Spring      string   `yaml:"spring,omitempty" validate:"omitempty,spring"`
	Tension     *float64 `yaml:"tension,omitempty" validate:"omitempty,gte=0"`
	Friction    *float64 `yaml:"friction,omitempty" validate:"omitempty,gte=0"`
	Mass        *float64 `yaml:"mass,omitempty" validate:"omitempty,gt=0"`
	Handles     []string `yaml:"handles,omitempty" validate:"omitempty,dive,direction"`
	Anchor      string   `yaml:"anchor,omitempty" validate:"omitempty,anchor"`
	Min         *Bound   `yaml:"min,omitempty"`
	Max         *Bound   `yaml:"max,omitempty"`
	AspectRatio *Ratio   `yaml:"aspect_ratio,omitempty"`
	Snap        *int     `yaml:"snap,omitempty" validate:"omitempty,gt=0,lte=200"`
}

// Bound is a min or max size constraint.
type Bound struct {
	Width   *float64 `yaml:"width,omitempty" validate:"omitempty,gt=0"`
	Height  *float64 `yaml:"height,omitempty" validate:"omitempty,gt=0"`
	Enabled bool     `yaml:"enabled"`
}

// Ratio is the aspect ratio constraint.
type Ratio struct {
	Value   *float64 `yaml:"value,omitempty" validate:"omitempty,gt=0"`
	Enabled bool     `yaml:"enabled"`
}

func (d *Document) hasSpringParams() bool {
	return d.Tension != nil || d.Friction != nil || d.Mass != nil
}
