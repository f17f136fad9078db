package config

// Configfile represents the structure of the mlpot.yaml configuration file.
// Optional numbers are pointers so an explicit zero can be told apart from an omitted value.
type Configfile struct {
	Backend              string        `yaml:"backend" validate:"omitempty,oneof=plain numpy gradient torch autograd"`
	EnableForces         bool          `yaml:"enable_forces"`
	CacheResults         *bool         `yaml:"cache_results"`
	EnergyUnitsToEV      *float64      `yaml:"energy_units_to_eV" validate:"omitempty,gt=0"`
	LengthUnitsToA       *float64      `yaml:"length_units_to_A" validate:"omitempty,gt=0"`
	FiniteDifferenceStep *float64      `yaml:"finite_difference_step" validate:"omitempty,gt=0"`
	Descriptor           DescriptorDTO `yaml:"descriptor"`
	Model                ModelDTO      `yaml:"model"`
	Logging              LoggingDTO    `yaml:"logging"`
}

// DescriptorDTO represents the descriptor section.
type DescriptorDTO struct {
	Kind    string   `yaml:"kind" validate:"required,oneof=radial ellipsoid"`
	Species []string `yaml:"species" validate:"required,min=1,unique,dive,required"`
	Cutoff  float64  `yaml:"cutoff" validate:"gt=0"`
	Basis   int      `yaml:"basis" validate:"gte=1,lte=64"`
	Width   float64  `yaml:"width" validate:"gt=0"`
}

// ModelDTO represents the model section. Path is resolved against the config file's directory.
type ModelDTO struct {
	Path      string    `yaml:"path"`
	Coef      []float64 `yaml:"coef"`
	Intercept float64   `yaml:"intercept"`
	Pad       bool      `yaml:"pad"`
}

// LoggingDTO represents the logging section.
type LoggingDTO struct {
	JSON    bool `yaml:"json"`
	Verbose bool `yaml:"verbose"`
}
