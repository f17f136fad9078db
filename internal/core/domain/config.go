package domain

// Descriptor kinds understood by the built-in descriptor factory.
const (
	DescriptorRadial    = "radial"
	DescriptorEllipsoid = "ellipsoid"
)

// Config is the validated content of an mlpot.yaml file.
type Config struct {
	Settings   Settings
	Descriptor DescriptorSpec
	Model      ModelSpec
	Logging    LoggingSpec
}

// DescriptorSpec selects and parameterizes a built-in descriptor.
type DescriptorSpec struct {
	Kind string
	// Species lists the atomic numbers the descriptor resolves, in feature order.
	Species []int
	Cutoff  float64
	Basis   int
	Width   float64
}

// ModelSpec locates the linear model coefficients.
// Path, when set, takes precedence over the inline coefficients.
type ModelSpec struct {
	Path      string
	Coef      []float64
	Intercept float64
	Pad       bool
}

// LoggingSpec configures the logger.
type LoggingSpec struct {
	JSON    bool
	Verbose bool
}
