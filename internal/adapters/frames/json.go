package frames

import (
	"fmt"

	"github.com/tidwall/gjson"
	"go.trai.ch/mlpot/internal/core/domain"
)

// ParseJSON parses a frame object or an array of frame objects.
//
// A frame has "numbers" or "symbols", "positions" as rows of three numbers,
// and optionally "cell" (three rows), "pbc" (one or three booleans) and
// "arrays" mapping attribute names to per-atom scalars or rows.
func ParseJSON(data []byte) ([]*domain.Snapshot, error) {
	if !gjson.ValidBytes(data) {
		return nil, parseError("invalid JSON", 0)
	}
	root := gjson.ParseBytes(data)

	var objects []gjson.Result
	switch {
	case root.IsArray():
		objects = root.Array()
	case root.IsObject():
		objects = []gjson.Result{root}
	default:
		return nil, parseError("expected a frame object or an array of frames", 0)
	}

	frames := make([]*domain.Snapshot, 0, len(objects))
	for index, obj := range objects {
		frame, err := parseJSONFrame(index, obj)
		if err != nil {
			return nil, parseError(err.Error(), index)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

func parseJSONFrame(index int, obj gjson.Result) (*domain.Snapshot, error) {
	if !obj.IsObject() {
		return nil, fmt.Errorf("frame %d is not an object", index)
	}

	positions := obj.Get("positions")
	if !positions.IsArray() {
		return nil, fmt.Errorf("frame %d has no positions", index)
	}
	rows := positions.Array()

	s := &domain.Snapshot{
		Index:     index,
		Numbers:   make([]int, len(rows)),
		Positions: make([]domain.Vec3, len(rows)),
	}
	for i, row := range rows {
		v, err := vec3(row)
		if err != nil {
			return nil, fmt.Errorf("frame %d position %d: %w", index, i, err)
		}
		s.Positions[i] = v
	}

	if err := parseSpecies(s, obj); err != nil {
		return nil, fmt.Errorf("frame %d: %w", index, err)
	}

	if cell := obj.Get("cell"); cell.Exists() {
		cellRows := cell.Array()
		if !cell.IsArray() || len(cellRows) != 3 {
			return nil, fmt.Errorf("frame %d: cell must have three rows", index)
		}
		var m domain.Mat3
		for k, row := range cellRows {
			v, err := vec3(row)
			if err != nil {
				return nil, fmt.Errorf("frame %d cell row %d: %w", index, k, err)
			}
			m[k] = v
		}
		s.Cell = &m
		s.PBC = &[3]bool{true, true, true}
	}

	if pbc := obj.Get("pbc"); pbc.Exists() {
		flags, err := pbcFlags(pbc)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", index, err)
		}
		s.PBC = &flags
	}

	var arrErr error
	obj.Get("arrays").ForEach(func(key, value gjson.Result) bool {
		values, err := flatten(value)
		if err != nil {
			arrErr = fmt.Errorf("frame %d array %q: %w", index, key.String(), err)
			return false
		}
		if s.Arrays == nil {
			s.Arrays = make(map[string][]float64)
		}
		s.Arrays[key.String()] = values
		return true
	})
	if arrErr != nil {
		return nil, arrErr
	}

	return s, nil
}

func parseSpecies(s *domain.Snapshot, obj gjson.Result) error {
	if numbers := obj.Get("numbers"); numbers.IsArray() {
		values := numbers.Array()
		if len(values) != len(s.Positions) {
			return fmt.Errorf("%d numbers for %d positions", len(values), len(s.Positions))
		}
		for i, v := range values {
			if v.Type != gjson.Number {
				return fmt.Errorf("number %d is not numeric", i)
			}
			s.Numbers[i] = int(v.Int())
		}
		return nil
	}
	if symbols := obj.Get("symbols"); symbols.IsArray() {
		values := symbols.Array()
		if len(values) != len(s.Positions) {
			return fmt.Errorf("%d symbols for %d positions", len(values), len(s.Positions))
		}
		for i, v := range values {
			z, err := domain.AtomicNumber(v.String())
			if err != nil {
				return fmt.Errorf("symbol %d %q: %w", i, v.String(), err)
			}
			s.Numbers[i] = z
		}
		return nil
	}
	return fmt.Errorf("frame needs numbers or symbols")
}

func vec3(row gjson.Result) (domain.Vec3, error) {
	var v domain.Vec3
	values := row.Array()
	if !row.IsArray() || len(values) != 3 {
		return v, fmt.Errorf("expected three numbers, got %s", row.Raw)
	}
	for k, x := range values {
		if x.Type != gjson.Number {
			return v, fmt.Errorf("expected a number, got %s", x.Raw)
		}
		v[k] = x.Float()
	}
	return v, nil
}

func pbcFlags(pbc gjson.Result) ([3]bool, error) {
	var flags [3]bool
	if pbc.IsBool() {
		flags = [3]bool{pbc.Bool(), pbc.Bool(), pbc.Bool()}
		return flags, nil
	}
	values := pbc.Array()
	if !pbc.IsArray() || len(values) != 3 {
		return flags, fmt.Errorf("pbc must be a boolean or three booleans")
	}
	for k, v := range values {
		if !v.IsBool() {
			return flags, fmt.Errorf("pbc entry %d is not a boolean", k)
		}
		flags[k] = v.Bool()
	}
	return flags, nil
}

// flatten turns per-atom scalars or rows into one row-major slice.
func flatten(value gjson.Result) ([]float64, error) {
	if !value.IsArray() {
		return nil, fmt.Errorf("expected an array")
	}
	var out []float64
	for _, item := range value.Array() {
		switch {
		case item.Type == gjson.Number:
			out = append(out, item.Float())
		case item.IsArray():
			for _, x := range item.Array() {
				if x.Type != gjson.Number {
					return nil, fmt.Errorf("expected a number, got %s", x.Raw)
				}
				out = append(out, x.Float())
			}
		default:
			return nil, fmt.Errorf("expected a number or a row of numbers, got %s", item.Raw)
		}
	}
	return out, nil
}
