package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrValidation is returned when a snapshot is structurally invalid or lacks an attribute the descriptor needs.
	ErrValidation = zerr.New("snapshot validation failed")

	// ErrDescriptor is returned when the descriptor fails or produces malformed features.
	ErrDescriptor = zerr.New("descriptor evaluation failed")

	// ErrModel is returned when the model fails or its output does not match the expected shape.
	ErrModel = zerr.New("model evaluation failed")

	// ErrPropertyNotImplemented is returned when a property is outside the configured capability set.
	ErrPropertyNotImplemented = zerr.New("property not implemented")

	// ErrInvalidSettings is returned when calculator settings are out of range.
	ErrInvalidSettings = zerr.New("invalid calculator settings")

	// ErrUnknownBackend is returned when a backend name is not recognized.
	ErrUnknownBackend = zerr.New("unknown backend")

	// ErrUnknownDescriptor is returned when a descriptor kind is not recognized.
	ErrUnknownDescriptor = zerr.New("unknown descriptor kind")

	// ErrUnknownElement is returned when a chemical symbol is not recognized.
	ErrUnknownElement = zerr.New("unknown element")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file fails validation.
	ErrConfigInvalid = zerr.New("invalid config file")

	// ErrModelLoadFailed is returned when model coefficients cannot be loaded.
	ErrModelLoadFailed = zerr.New("failed to load model")

	// ErrFrameReadFailed is returned when a structure file cannot be read.
	ErrFrameReadFailed = zerr.New("failed to read structure file")

	// ErrFrameParseFailed is returned when a structure file cannot be parsed.
	ErrFrameParseFailed = zerr.New("failed to parse structure file")

	// ErrNoFrames is returned when a structure file holds no frames.
	ErrNoFrames = zerr.New("structure file contains no frames")

	// ErrFrameOutOfRange is returned when a requested frame index does not exist.
	ErrFrameOutOfRange = zerr.New("frame index out of range")

	// ErrWatchFailed is returned when a file cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch file")
)

// Classify reports err as an instance of kind while keeping err in the chain,
// so errors.Is matches both.
func Classify(kind, err error) error {
	return fmt.Errorf("%w: %w", kind, err)
}
