package sheets

import (
	"context"
	"errors"
	"fmt"

	"followup_assistant/internal/domain/application"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Custom errors
var ErrAuthentication = errors.New("google sheets authentication failed")
var ErrSheetNotFound = errors.New("spreadsheet or range not found")

// ApplicationRepository implements application.Repository against the Google
// Sheets API. The first row of the range is the header; each following row is
// one application. Rows that cannot be decoded are logged and skipped rather
// than failing the whole fetch.
type ApplicationRepository struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	readRange     string
	logger        *logrus.Logger
}

// NewApplicationRepository authenticates with the service account credentials
// JSON and returns a repository bound to one spreadsheet range. Credential
// problems surface as ErrAuthentication so the caller can abort the run.
func NewApplicationRepository(
	ctx context.Context,
	credentialsJSON []byte,
	spreadsheetID string,
	readRange string,
	logger *logrus.Logger,
) (*ApplicationRepository, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, sheetsapi.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing service account credentials: %v", ErrAuthentication, err)
	}

	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	return &ApplicationRepository{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		logger:        logger,
	}, nil
}

// List fetches every tracked application. A sheet with no data rows yields an
// empty slice, not an error.
func (r *ApplicationRepository) List(ctx context.Context) ([]*application.Application, error) {
	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, r.readRange).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			switch apiErr.Code {
			case 401, 403:
				return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
			case 404:
				return nil, fmt.Errorf("%w: %v", ErrSheetNotFound, err)
			}
		}
		return nil, fmt.Errorf("fetching values from spreadsheet %s: %w", r.spreadsheetID, err)
	}

	if len(resp.Values) < 2 {
		r.logger.Warnf("Spreadsheet %s range %s has no data rows.", r.spreadsheetID, r.readRange)
		return nil, nil
	}

	header := toStrings(resp.Values[0])
	apps := make([]*application.Application, 0, len(resp.Values)-1)
	skipped := 0
	for i, raw := range resp.Values[1:] {
		rowNum := i + 1
		app, err := application.FromRow(header, toStrings(raw), rowNum)
		if err != nil {
			r.logger.Warnf("Skipping malformed row: %v", err)
			skipped++
			continue
		}
		apps = append(apps, app)
	}
	if skipped > 0 {
		r.logger.Warnf("Skipped %d malformed row(s) out of %d.", skipped, len(resp.Values)-1)
	}
	return apps, nil
}

// toStrings flattens one row of API cell values. The API returns interface{}
// cells; everything in this sheet is text or a formatted date string.
func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}
