package frames

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/mlpot/internal/core/domain"
)

// column describes one entry of an extended XYZ Properties spec.
type column struct {
	name  string
	kind  byte
	width int
}

var defaultColumns = []column{{"species", 'S', 1}, {"pos", 'R', 3}}

// ParseXYZ parses concatenated (extended) XYZ frames.
func ParseXYZ(data []byte) ([]*domain.Snapshot, error) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, parseError(err.Error(), 0)
	}

	var frames []*domain.Snapshot
	for pos := 0; pos < len(lines); {
		if strings.TrimSpace(lines[pos]) == "" {
			pos++
			continue
		}
		index := len(frames)
		n, err := strconv.Atoi(strings.TrimSpace(lines[pos]))
		if err != nil || n <= 0 {
			return nil, parseError(fmt.Sprintf("line %d: expected a positive atom count, got %q", pos+1, lines[pos]), index)
		}
		if pos+2+n > len(lines) {
			return nil, parseError(fmt.Sprintf("line %d: frame declares %d atoms but the file ends early", pos+1, n), index)
		}
		frame, err := parseXYZFrame(index, lines[pos+1], lines[pos+2:pos+2+n], pos+3)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
		pos += 2 + n
	}
	return frames, nil
}

func parseXYZFrame(index int, comment string, atoms []string, firstLine int) (*domain.Snapshot, error) {
	info, err := parseComment(comment)
	if err != nil {
		return nil, parseError(fmt.Sprintf("line %d: %v", firstLine-1, err), index)
	}

	columns := defaultColumns
	if spec, ok := info["properties"]; ok {
		if columns, err = parseProperties(spec); err != nil {
			return nil, parseError(fmt.Sprintf("line %d: %v", firstLine-1, err), index)
		}
	}

	s := &domain.Snapshot{
		Index:     index,
		Numbers:   make([]int, len(atoms)),
		Positions: make([]domain.Vec3, len(atoms)),
	}

	if lattice, ok := info["lattice"]; ok {
		values, err := parseFloats(lattice, 9)
		if err != nil {
			return nil, parseError(fmt.Sprintf("line %d: Lattice: %v", firstLine-1, err), index)
		}
		var cell domain.Mat3
		for k, v := range values {
			cell[k/3][k%3] = v
		}
		s.Cell = &cell
		s.PBC = &[3]bool{true, true, true}
	}
	if pbc, ok := info["pbc"]; ok {
		flags, err := parsePBC(pbc)
		if err != nil {
			return nil, parseError(fmt.Sprintf("line %d: pbc: %v", firstLine-1, err), index)
		}
		s.PBC = &flags
	}

	width := 0
	for _, c := range columns {
		width += c.width
	}

	for i, line := range atoms {
		fields := strings.Fields(line)
		if len(fields) < width {
			return nil, parseError(fmt.Sprintf("line %d: expected %d columns, got %d", firstLine+i, width, len(fields)), index)
		}
		at := 0
		for _, c := range columns {
			values := fields[at : at+c.width]
			at += c.width
			if err := assignColumn(s, i, len(atoms), c, values); err != nil {
				return nil, parseError(fmt.Sprintf("line %d: %s: %v", firstLine+i, c.name, err), index)
			}
		}
	}
	return s, nil
}

func assignColumn(s *domain.Snapshot, atom, n int, c column, values []string) error {
	switch {
	case c.name == "species":
		z, err := speciesNumber(values[0])
		if err != nil {
			return err
		}
		s.Numbers[atom] = z
		return nil
	case c.name == "pos":
		for k := range 3 {
			v, err := strconv.ParseFloat(values[k], 64)
			if err != nil {
				return err
			}
			s.Positions[atom][k] = v
		}
		return nil
	case c.name == "Z" && c.kind == 'I':
		z, err := strconv.Atoi(values[0])
		if err != nil {
			return err
		}
		s.Numbers[atom] = z
		return nil
	case c.kind == 'S':
		return nil
	}

	if s.Arrays == nil {
		s.Arrays = make(map[string][]float64)
	}
	if _, ok := s.Arrays[c.name]; !ok {
		s.Arrays[c.name] = make([]float64, n*c.width)
	}
	for k, raw := range values {
		v, err := parseScalar(c.kind, raw)
		if err != nil {
			return err
		}
		s.Arrays[c.name][atom*c.width+k] = v
	}
	return nil
}

func parseScalar(kind byte, raw string) (float64, error) {
	switch kind {
	case 'R':
		return strconv.ParseFloat(raw, 64)
	case 'I':
		v, err := strconv.Atoi(raw)
		return float64(v), err
	case 'L':
		b, err := parseBool(raw)
		if b {
			return 1, err
		}
		return 0, err
	default:
		return 0, fmt.Errorf("unsupported column type %q", kind)
	}
}

func speciesNumber(raw string) (int, error) {
	if z, err := strconv.Atoi(raw); err == nil {
		return z, nil
	}
	return domain.AtomicNumber(raw)
}

// parseComment splits key=value pairs. Values may be double-quoted. Keys are lower-cased.
func parseComment(line string) (map[string]string, error) {
	info := make(map[string]string)
	rest := strings.TrimSpace(line)
	for rest != "" {
		eq := strings.IndexAny(rest, "= \t")
		if eq < 0 || rest[eq] != '=' {
			// A bare word such as a title; skip it.
			end := strings.IndexAny(rest, " \t")
			if end < 0 {
				break
			}
			rest = strings.TrimSpace(rest[end:])
			continue
		}
		key := strings.ToLower(rest[:eq])
		rest = rest[eq+1:]

		var value string
		if strings.HasPrefix(rest, `"`) {
			end := strings.IndexByte(rest[1:], '"')
			if end < 0 {
				return nil, fmt.Errorf("unterminated quote in value of %s", key)
			}
			value = rest[1 : end+1]
			rest = rest[end+2:]
		} else {
			end := strings.IndexAny(rest, " \t")
			if end < 0 {
				end = len(rest)
			}
			value = rest[:end]
			rest = rest[end:]
		}
		info[key] = value
		rest = strings.TrimSpace(rest)
	}
	return info, nil
}

// parseProperties parses "name:type:width" triples.
func parseProperties(spec string) ([]column, error) {
	parts := strings.Split(spec, ":")
	if len(parts)%3 != 0 {
		return nil, fmt.Errorf("malformed Properties %q", spec)
	}
	var columns []column
	var hasSpecies, hasPos bool
	for i := 0; i < len(parts); i += 3 {
		width, err := strconv.Atoi(parts[i+2])
		if err != nil || width <= 0 || len(parts[i+1]) != 1 {
			return nil, fmt.Errorf("malformed Properties entry %q", strings.Join(parts[i:i+3], ":"))
		}
		c := column{name: parts[i], kind: strings.ToUpper(parts[i+1])[0], width: width}
		if !strings.ContainsRune("SRIL", rune(c.kind)) {
			return nil, fmt.Errorf("unsupported column type %q for %s", c.kind, c.name)
		}
		switch c.name {
		case "species":
			hasSpecies = c.kind == 'S' && width == 1
		case "Z":
			hasSpecies = hasSpecies || (c.kind == 'I' && width == 1)
		case "pos":
			hasPos = c.kind == 'R' && width == 3
		}
		columns = append(columns, c)
	}
	if !hasSpecies || !hasPos {
		return nil, fmt.Errorf("properties %q must include species:S:1 and pos:R:3", spec)
	}
	return columns, nil
}

func parseFloats(raw string, n int) ([]float64, error) {
	fields := strings.Fields(raw)
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parsePBC(raw string) ([3]bool, error) {
	var flags [3]bool
	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return flags, fmt.Errorf("expected 3 flags, got %d", len(fields))
	}
	for i, f := range fields {
		b, err := parseBool(f)
		if err != nil {
			return flags, err
		}
		flags[i] = b
	}
	return flags, nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToUpper(raw) {
	case "T", "TRUE", "1":
		return true, nil
	case "F", "FALSE", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid logical value %q", raw)
	}
}
