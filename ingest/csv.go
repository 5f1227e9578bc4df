// Package ingest converts raw sales rows from a CSV export or a Google Sheet
// into the flat SaleRecord shape the dashboard consumes. A malformed row
// degrades to default values instead of aborting the batch.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/lightcapturers/wfdata/models"
	"github.com/lightcapturers/wfdata/utils"
)

// Row is one source row keyed by its header name.
type Row map[string]string

// boltPatternRe matches a bolt pattern like "6x139.7" or "5x114.3" embedded
// in a product ID.
var boltPatternRe = regexp.MustCompile(`[456]\d*x\d+(\.\d+)?`)

// ReadCSV parses a header-led CSV stream into sale records. Quoted fields may
// contain commas; rows with fewer fields than the header are skipped.
func ReadCSV(r io.Reader) ([]models.SaleRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(lines) == 0 {
		return []models.SaleRecord{}, nil
	}

	headers := make([]string, len(lines[0]))
	for i, h := range lines[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if len(line) < len(headers) {
			continue
		}
		row := make(Row, len(headers))
		for i, header := range headers {
			row[header] = strings.TrimSpace(line[i])
		}
		rows = append(rows, row)
	}

	return MapRows(rows), nil
}

// ReadCSVFile parses a CSV file on disk.
func ReadCSVFile(path string) ([]models.SaleRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv file: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// MapRows converts header-keyed source rows into sale records.
func MapRows(rows []Row) []models.SaleRecord {
	records := make([]models.SaleRecord, 0, len(rows))
	for i, row := range rows {
		records = append(records, MapRow(row, i))
	}
	return records
}

// MapRow maps one source row to a sale record. Column mapping:
//
//	Price        — stripped of currency symbols and commas, default 0
//	Bolt Pattern — direct column, else extracted from the ID column
//	SKU          — SKU column, else ID, else a generated placeholder
//	productTitle — the ID column (listing title), else derived on Normalize
//	quantity     — always 1; each row is one order
func MapRow(row Row, index int) models.SaleRecord {
	boltPattern := row["Bolt Pattern"]
	if boltPattern == "" {
		boltPattern = extractBoltPattern(row["ID"])
	}

	sku := row["SKU"]
	if sku == "" {
		sku = row["ID"]
	}
	if sku == "" {
		sku = fmt.Sprintf("SKU-%d", index+1)
	}

	record := models.SaleRecord{
		ID:           index + 1,
		Channel:      row["Channel"],
		Vendor:       row["Vendor"],
		Wheel:        row["Wheel"],
		Size:         row["Size"],
		BoltPattern:  boltPattern,
		Finish:       row["Finish"],
		Quantity:     1,
		Price:        ParsePrice(row["Price"]),
		SKU:          sku,
		ProductTitle: row["ID"],
	}

	if raw := row["Date"]; raw != "" {
		date, err := utils.ParseFlexibleDate(raw)
		if err != nil {
			log.Printf("⚠️  [INGEST] Row %d: unparseable date %q, leaving zero", index+1, raw)
		} else {
			record.Date = date
		}
	}

	record.Normalize()
	return record
}

// ParsePrice parses a price cell such as `"$1,234.50"`, defaulting to 0.
func ParsePrice(value string) float64 {
	cleaned := strings.NewReplacer("$", "", ",", "", `"`, "").Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return 0
	}
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return price
}

// extractBoltPattern pulls a bolt pattern out of a product ID. IDs look like
// "Brand Wheel 20x9 6x139.7 Matte Black": the size comes first, so the match
// is attempted on the segment after the first "x".
func extractBoltPattern(id string) string {
	if !strings.Contains(id, "x") {
		return ""
	}
	parts := strings.SplitN(id, "x", 2)
	if len(parts) < 2 {
		return ""
	}
	return boltPatternRe.FindString(parts[1])
}
