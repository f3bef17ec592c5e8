// Package reminder decides whether a job application is due for a follow-up.
// Evaluation is a pure function of the record, today's date, and the
// configured threshold; decisions are per-run and never persisted.
package reminder

import (
	"fmt"
	"time"

	"followup_assistant/internal/domain/application"
)

// Decision is the outcome of evaluating one application.
type Decision struct {
	Due    bool
	Days   int    // Days since last contact (or since applying, if never contacted)
	Reason string // Human-readable explanation, mainly for debug logs
}

// Evaluate determines whether a follow-up is due for app as of today.
// Due means: the status is still open (applied or interviewing), more than
// thresholdDays have passed since the last contact, and there is somebody to
// follow up with. The applied date stands in for the last contact when no
// conversation was ever logged.
func Evaluate(app *application.Application, today time.Time, thresholdDays int) Decision {
	if app.Status.Terminal() {
		return Decision{Reason: fmt.Sprintf("status %q is terminal", app.Status)}
	}

	last := app.LastContact
	if last.IsZero() {
		last = app.AppliedOn
	}
	if last.IsZero() {
		return Decision{Reason: "no last contact or applied date on record"}
	}

	days := daysBetween(last, today)
	if days <= thresholdDays {
		return Decision{
			Days:   days,
			Reason: fmt.Sprintf("only %d day(s) since last contact, threshold is %d", days, thresholdDays),
		}
	}

	if app.Contact() == "" {
		return Decision{
			Days:   days,
			Reason: "no recruiter or hiring manager on record",
		}
	}

	return Decision{
		Due:    true,
		Days:   days,
		Reason: fmt.Sprintf("%d day(s) since last contact with %s", days, app.Contact()),
	}
}

// daysBetween counts whole calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
