package assignment

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadFormat is returned when the input does not follow the documented
// text format; the wrapped message points at the offending line.
var ErrBadFormat = errors.New("assignment: malformed problem file")

// ParseProblem reads a Problem from the plain text format:
//
//	min|max <workers> <tasks>
//	<tasks whitespace-separated costs per worker row>
//
// The name labels the parsed problem (callers typically pass the file
// basename). Errors wrap ErrBadFormat and match it via errors.Is.
func ParseProblem(name string, r io.Reader) (Problem, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return Problem{}, fmt.Errorf("%w: missing header", ErrBadFormat)
	}

	header := strings.Fields(scanner.Text())
	if len(header) != 3 {
		return Problem{}, fmt.Errorf("%w: header must be \"min|max workers tasks\"", ErrBadFormat)
	}
	if header[0] != "min" && header[0] != "max" {
		return Problem{}, fmt.Errorf("%w: unknown direction %q", ErrBadFormat, header[0])
	}
	workers, err := strconv.Atoi(header[1])
	if err != nil {
		return Problem{}, fmt.Errorf("%w: worker count %q", ErrBadFormat, header[1])
	}
	tasks, err := strconv.Atoi(header[2])
	if err != nil {
		return Problem{}, fmt.Errorf("%w: task count %q", ErrBadFormat, header[2])
	}
	if workers <= 0 || tasks <= 0 {
		return Problem{}, fmt.Errorf("%w: dimensions must be positive", ErrBadFormat)
	}

	costs := make([][]float64, 0, workers)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != tasks {
			return Problem{}, fmt.Errorf("%w: row %d has %d costs, want %d",
				ErrBadFormat, len(costs), len(fields), tasks)
		}
		row := make([]float64, tasks)
		for j, f := range fields {
			row[j], err = strconv.ParseFloat(f, 64)
			if err != nil {
				return Problem{}, fmt.Errorf("%w: cost %q", ErrBadFormat, f)
			}
		}
		costs = append(costs, row)
	}
	if err = scanner.Err(); err != nil {
		return Problem{}, err
	}
	if len(costs) != workers {
		return Problem{}, fmt.Errorf("%w: got %d cost rows, want %d", ErrBadFormat, len(costs), workers)
	}

	return Problem{Name: name, Costs: costs, Minimize: header[0] == "min"}, nil
}
