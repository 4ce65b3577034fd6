// Package modelio reads and writes tesseroid model files: a
// line-oriented text format with seven whitespace-separated fields per
// tesseroid (W E S N top bottom density) and '#'-prefixed comments.
package modelio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bxrne/launchrail/pkg/tesseroid"
)

// Warning records a skipped line and why it was rejected.
type Warning struct {
	Line   int
	Text   string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %q: %s", w.Line, w.Text, w.Reason)
}

// Read parses every non-comment, non-blank line of r into a Tesseroid
// and appends it to the returned Model. A line with the wrong field
// count or failing the tesseroid invariants is skipped and recorded as
// a Warning rather than aborting the read.
func Read(r io.Reader) (*tesseroid.Model, []Warning, error) {
	model := tesseroid.NewModel()
	var warnings []Warning

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 7 {
			warnings = append(warnings, Warning{Line: lineNo, Text: line, Reason: fmt.Sprintf("expected 7 fields, got %d", len(fields))})
			continue
		}

		values := make([]float64, 7)
		parseErr := false
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				warnings = append(warnings, Warning{Line: lineNo, Text: line, Reason: fmt.Sprintf("field %d: %v", i+1, err)})
				parseErr = true
				break
			}
			values[i] = v
		}
		if parseErr {
			continue
		}

		t, err := tesseroid.New(values[0], values[1], values[2], values[3], values[4], values[5], values[6])
		if err != nil {
			warnings = append(warnings, Warning{Line: lineNo, Text: line, Reason: err.Error()})
			continue
		}
		model.Add(t)
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("modelio: scan: %w", err)
	}
	return model, warnings, nil
}

// Write serializes model in the same seven-field format Read consumes,
// optionally preceded by comment lines (each is written with a leading
// '#' regardless of whether the caller already included one).
func Write(w io.Writer, model *tesseroid.Model, comments ...string) error {
	for _, c := range comments {
		line := c
		if !strings.HasPrefix(line, "#") {
			line = "# " + line
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("modelio: write comment: %w", err)
		}
	}
	for _, t := range model.Elements() {
		_, err := fmt.Fprintf(w, "%g %g %g %g %g %g %g\n", t.West, t.East, t.South, t.North, t.Top, t.Bottom, t.Density)
		if err != nil {
			return fmt.Errorf("modelio: write tesseroid: %w", err)
		}
	}
	return nil
}
