package application

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var header = []string{"Company", "Role", "Applied On", "Last Spoken On", "Status", "Recruiter", "Hiring Manager", "Notes"}

func TestFromRow_FullRow(t *testing.T) {
	row := []string{"Acme", "Backend Engineer", "06/01/25", "06/10/25", "interviewing", "Dana", "Sam", "phone screen done"}
	app, err := FromRow(header, row, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, app.Row)
	assert.Equal(t, "Acme", app.Company)
	assert.Equal(t, "Backend Engineer", app.Role)
	assert.Equal(t, StatusInterviewing, app.Status)
	assert.Equal(t, "Dana", app.Recruiter)
	assert.Equal(t, "Sam", app.HiringManager)
	assert.Equal(t, "phone screen done", app.Notes)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), app.AppliedOn)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), app.LastContact)
}

func TestFromRow_HeaderNormalization(t *testing.T) {
	// Underscored headers decode the same as spaced ones.
	h := []string{"company", "role", "applied_on", "last_spoken_on", "status", "recruiter", "hiring_manager"}
	row := []string{"Acme", "SRE", "2025-06-01", "2025-06-10", "applied", "Dana", ""}
	app, err := FromRow(h, row, 1)
	require.NoError(t, err)
	assert.Equal(t, "Acme", app.Company)
	assert.Equal(t, "Dana", app.Recruiter)
}

func TestFromRow_ShortRowPadded(t *testing.T) {
	row := []string{"Acme", "SRE", "06/01/25"}
	app, err := FromRow(header, row, 1)
	require.NoError(t, err)
	assert.True(t, app.LastContact.IsZero())
	assert.Equal(t, StatusApplied, app.Status)
	assert.Empty(t, app.Contact())
}

func TestFromRow_BlankStatusMeansApplied(t *testing.T) {
	row := []string{"Acme", "SRE", "06/01/25", "06/10/25", "", "Dana", "", ""}
	app, err := FromRow(header, row, 1)
	require.NoError(t, err)
	assert.Equal(t, StatusApplied, app.Status)
}

func TestFromRow_Errors(t *testing.T) {
	cases := []struct {
		name string
		row  []string
		want string
	}{
		{"missing company", []string{"", "SRE", "06/01/25"}, "missing company"},
		{"missing role", []string{"Acme", "", "06/01/25"}, "missing role"},
		{"bad applied date", []string{"Acme", "SRE", "June 1st"}, "applied date"},
		{"bad contact date", []string{"Acme", "SRE", "06/01/25", "someday"}, "last contact date"},
		{"unknown status", []string{"Acme", "SRE", "06/01/25", "06/10/25", "ghosted"}, "unknown status"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromRow(header, tc.row, 5)
			require.Error(t, err)
			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, 5, perr.Row)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseDate_Formats(t *testing.T) {
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{"06/01/25", "06/01/2025", "2025-06-01"} {
		got, err := ParseDate(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	got, err := ParseDate("  ")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = ParseDate("01.06.2025")
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus(" Interviewing ")
	require.NoError(t, err)
	assert.Equal(t, StatusInterviewing, s)

	_, err = ParseStatus("withdrawn")
	assert.Error(t, err)
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusOffer.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.False(t, StatusApplied.Terminal())
	assert.False(t, StatusInterviewing.Terminal())
}

func TestContact_RecruiterWinsOverHiringManager(t *testing.T) {
	a := &Application{Recruiter: "Dana", HiringManager: "Sam"}
	assert.Equal(t, "Dana", a.Contact())
	a.Recruiter = ""
	assert.Equal(t, "Sam", a.Contact())
}
