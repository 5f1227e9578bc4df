package ingest

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/lightcapturers/wfdata/models"
)

// SheetSource describes the Google Sheet the dataset is refreshed from.
type SheetSource struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsPath string // service account key file
}

// FetchSheetRecords pulls the configured sheet and maps its rows into sale
// records. The first sheet row is treated as the header.
func FetchSheetRecords(ctx context.Context, src SheetSource) ([]models.SaleRecord, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(src.CredentialsPath),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}

	resp, err := svc.Spreadsheets.Values.Get(src.SpreadsheetID, src.SheetName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetching sheet %q: %w", src.SheetName, err)
	}
	if len(resp.Values) == 0 {
		log.Printf("⚠️  [INGEST] No data found in sheet %q", src.SheetName)
		return []models.SaleRecord{}, nil
	}

	rows := SheetRows(resp.Values)
	log.Printf("📥 [INGEST] Fetched %d rows from sheet %q", len(rows), src.SheetName)
	return MapRows(rows), nil
}

// SheetRows converts the raw cell grid from the Sheets API into header-keyed
// rows. Short rows are padded with empty strings, matching the CSV path's
// tolerance for ragged data.
func SheetRows(values [][]interface{}) []Row {
	if len(values) == 0 {
		return nil
	}

	headers := make([]string, len(values[0]))
	for i, cell := range values[0] {
		headers[i] = strings.TrimSpace(cellString(cell))
	}

	rows := make([]Row, 0, len(values)-1)
	for _, line := range values[1:] {
		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(line) {
				row[header] = cellString(line[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func cellString(cell interface{}) string {
	if cell == nil {
		return ""
	}
	if s, ok := cell.(string); ok {
		return s
	}
	return fmt.Sprint(cell)
}
