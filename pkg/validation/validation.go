// Package validation collects catalog and layout findings into a report.
package validation

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Level indicates which validation stage produced the result.
type Level string

const (
	LevelSchema     Level = "schema"
	LevelAnalytical Level = "analytical"
	LevelSpatial    Level = "spatial"
)

// Severity indicates how critical a validation result is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single validation finding.
type Result struct {
	Level        Level    `json:"level"`
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
	ConfigPath   string   `json:"config_path,omitempty"`
	ActualValue  any      `json:"actual_value,omitempty"`
	Expected     string   `json:"expected,omitempty"`
	ConflictWith string   `json:"conflict_with,omitempty"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

// Report is the complete validation output.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport creates an empty valid report.
func NewReport() *Report {
	r := &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
	r.updateSummary()
	return r
}

// AddError adds an error result and marks the report invalid.
func (r *Report) AddError(result Result) {
	result.Severity = SeverityError
	r.Errors = append(r.Errors, result)
	r.Valid = false
	r.updateSummary()
}

// AddWarning adds a warning result.
func (r *Report) AddWarning(result Result) {
	result.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, result)
	r.updateSummary()
}

// AddInfo adds an informational result.
func (r *Report) AddInfo(result Result) {
	result.Severity = SeverityInfo
	r.Info = append(r.Info, result)
	r.updateSummary()
}

// Merge combines another report into this one. A nil report is ignored.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	if !other.Valid {
		r.Valid = false
	}
	r.updateSummary()
}

// Err returns nil for a valid report, otherwise an error wrapping one error
// per result. multierr.Errors on the unwrapped error recovers them.
func (r *Report) Err() error {
	if r.Valid {
		return nil
	}
	var err error
	for _, e := range r.Errors {
		err = multierr.Append(err, errors.New(e.Message))
	}
	return fmt.Errorf("invalid catalog (%s): %w", r.Summary, err)
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings, %d info",
		len(r.Errors), len(r.Warnings), len(r.Info))
}
