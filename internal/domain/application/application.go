package application

import (
	"fmt"
	"strings"
	"time"
)

// Status is the current state of a job application as recorded in the sheet.
type Status string

const (
	StatusApplied      Status = "applied"
	StatusInterviewing Status = "interviewing"
	StatusOffer        Status = "offer"
	StatusRejected     Status = "rejected"
)

// ParseStatus maps a raw sheet cell to a Status. The empty cell means the
// application was submitted and nothing has happened since, so it parses as
// StatusApplied. Anything outside the known set is an error.
func ParseStatus(raw string) (Status, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "", "applied":
		return StatusApplied, nil
	case "interviewing":
		return StatusInterviewing, nil
	case "offer":
		return StatusOffer, nil
	case "rejected":
		return StatusRejected, nil
	}
	return "", fmt.Errorf("unknown status %q", raw)
}

// Terminal reports whether the application has reached an end state and no
// longer needs follow-ups.
func (s Status) Terminal() bool {
	return s == StatusOffer || s == StatusRejected
}

// Application represents one tracked job application, read from a single
// spreadsheet row. The sheet is the source of truth; records are read-only
// here and mutated externally by the user between runs.
type Application struct {
	Row           int // 1-based data row index (header excluded); record identity
	Company       string
	Role          string
	AppliedOn     time.Time
	LastContact   time.Time // Zero if the user never logged a conversation
	Status        Status
	Recruiter     string
	HiringManager string
	Notes         string
}

// Contact returns the person to follow up with: the recruiter if one is on
// file, otherwise the hiring manager, otherwise "".
func (a *Application) Contact() string {
	if a.Recruiter != "" {
		return a.Recruiter
	}
	return a.HiringManager
}

// dateLayouts are the accepted cell formats, most common first. The two-digit
// year form matches what the tracking sheet has always used.
var dateLayouts = []string{"01/02/06", "01/02/2006", "2006-01-02"}

// ParseDate parses a date cell. An empty cell is not an error; it returns the
// zero time so callers can treat the field as absent.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

// ParseError marks a row that could not be mapped to an Application. Policy
// is skip-and-continue: callers log it and move on, never abort the run.
type ParseError struct {
	Row   int
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// normalizeHeader collapses a header cell to a canonical key: lowercase,
// with spaces and underscores treated as equivalent.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.ReplaceAll(h, "_", " ")
}

// FromRow decodes one data row against the sheet's header row. The row number
// identifies the record in logs and errors. Cells beyond the header width are
// ignored; a row shorter than the header is padded with empty cells.
func FromRow(header []string, row []string, rowNum int) (*Application, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[normalizeHeader(h)] = i
	}
	cell := func(names ...string) string {
		for _, name := range names {
			if i, ok := cols[name]; ok && i < len(row) {
				return strings.TrimSpace(row[i])
			}
		}
		return ""
	}

	app := &Application{
		Row:           rowNum,
		Company:       cell("company"),
		Role:          cell("role", "title", "position"),
		Recruiter:     cell("recruiter"),
		HiringManager: cell("hiring manager"),
		Notes:         cell("notes"),
	}

	if app.Company == "" {
		return nil, &ParseError{Row: rowNum, Cause: fmt.Errorf("missing company")}
	}
	if app.Role == "" {
		return nil, &ParseError{Row: rowNum, Cause: fmt.Errorf("missing role")}
	}

	var err error
	if app.AppliedOn, err = ParseDate(cell("applied on", "applied")); err != nil {
		return nil, &ParseError{Row: rowNum, Cause: fmt.Errorf("applied date: %w", err)}
	}
	if app.LastContact, err = ParseDate(cell("last spoken on", "last contact")); err != nil {
		return nil, &ParseError{Row: rowNum, Cause: fmt.Errorf("last contact date: %w", err)}
	}
	if app.Status, err = ParseStatus(cell("status")); err != nil {
		return nil, &ParseError{Row: rowNum, Cause: err}
	}

	return app, nil
}
