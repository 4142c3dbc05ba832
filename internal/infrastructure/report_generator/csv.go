package report_generator

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/support_reporter/internal/domain"
)

type csvRow struct {
	SourceFile     string  `csv:"source_file"`
	TestID         string  `csv:"test_id"`
	AT             string  `csv:"at"`
	ATVersion      *string `csv:"at_version"`
	Browser        string  `csv:"browser"`
	BrowserVersion *string `csv:"browser_version"`
	OSVersion      *string `csv:"os_version"`
	Date           string  `csv:"date"`
	Support        *string `csv:"support"`
	Position       int     `csv:"position"`

	domain.OutputEntry
}

// CSV writes one line per output entry, each carrying the support point
// identity.
type CSV struct{}

func NewCSV() *CSV {
	return &CSV{}
}

func (g *CSV) Extension() string {
	return ".csv"
}

func (g *CSV) GenerateReport(outputPath, sourceFile string, record *domain.ParsedRecord) error {
	data, err := g.marshal(sourceFile, record)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write csv %q: %w", outputPath, err)
	}

	return nil
}

func (g *CSV) marshal(sourceFile string, record *domain.ParsedRecord) ([]byte, error) {
	sp := record.SupportPoint

	rows := make([]csvRow, 0, len(sp.Output))
	for i, e := range sp.Output {
		rows = append(rows, csvRow{
			SourceFile:     sourceFile,
			TestID:         domain.Value(record.TestID),
			AT:             domain.Value(record.AT),
			ATVersion:      sp.ATVersion,
			Browser:        domain.Value(record.Browser),
			BrowserVersion: sp.BrowserVersion,
			OSVersion:      sp.OSVersion,
			Date:           sp.Date,
			Support:        sp.Support,
			Position:       i + 1,
			OutputEntry:    *e,
		})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	enc := csvutil.NewEncoder(w)
	enc.AutoHeader = false

	if err := enc.EncodeHeader(csvRow{}); err != nil {
		return nil, fmt.Errorf("failed to encode csv header: %w", err)
	}

	if err := enc.Encode(rows); err != nil {
		return nil, fmt.Errorf("failed to encode csv rows: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
