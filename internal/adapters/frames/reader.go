// Package frames reads atomic configurations from structure files.
package frames

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FrameReader = (*Reader)(nil)

// Reader picks a format by file extension.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFrames returns every frame in the file at path.
func (r *Reader) ReadFrames(path string) ([]*domain.Snapshot, error) {
	//nolint:gosec // Path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.Classify(domain.ErrFrameReadFailed, err), "failed to read frames"), "path", path)
	}

	var frames []*domain.Snapshot
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xyz", ".extxyz":
		frames, err = ParseXYZ(data)
	case ".json":
		frames, err = ParseJSON(data)
	default:
		err = zerr.With(zerr.Wrap(domain.ErrFrameParseFailed, "unsupported structure format; expected .xyz, .extxyz or .json"), "extension", ext)
	}
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if len(frames) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoFrames, "nothing to evaluate"), "path", path)
	}
	return frames, nil
}

func parseError(msg string, frame int) error {
	return zerr.With(zerr.Wrap(domain.ErrFrameParseFailed, msg), "frame", frame)
}
