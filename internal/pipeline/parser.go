package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kurochkinivan/support_reporter/internal/domain"
	"github.com/kurochkinivan/support_reporter/internal/supportpoint"
)

// maxReportSize bounds the report bodies read from disk.
const maxReportSize = 1 << 20

type Parser struct {
	log          *slog.Logger
	clock        func() time.Time
	files        <-chan string
	parseResults chan<- *domain.ParseResult
}

func NewParser(
	log *slog.Logger,
	clock func() time.Time,
	files <-chan string,
	parseResults chan<- *domain.ParseResult,
) *Parser {
	return &Parser{
		log:          log,
		clock:        clock,
		files:        files,
		parseResults: parseResults,
	}
}

func (p *Parser) Run(ctx context.Context) error {
	defer close(p.parseResults)

	for {
		select {
		case filename, ok := <-p.files:
			if !ok {
				return nil
			}

			log := p.log.With(slog.String("filename", filename))

			log.DebugContext(ctx, "received file to parse")

			record, err := p.parseFile(ctx, log, filename)
			if err != nil {
				log.ErrorContext(ctx, "failed to parse report", slog.String("err", err.Error()))
			}

			select {
			case p.parseResults <- &domain.ParseResult{
				Filename: filename,
				Record:   record,
				Error:    err,
			}:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *Parser) parseFile(ctx context.Context, log *slog.Logger, filename string) (*domain.ParsedRecord, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, err
	}

	if info.Size() > maxReportSize {
		return nil, fmt.Errorf("report is too large: %d bytes, limit is %d", info.Size(), maxReportSize)
	}

	body, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	record, diag := supportpoint.Extract(string(body), p.clock())

	if !diag.Empty() {
		log.WarnContext(ctx, "report has unresolved fields",
			slog.Any("unresolved", diag.Unresolved),
			slog.Any("duplicates", diag.Duplicates),
			slog.Int("malformed_rows", len(diag.Malformed)),
		)
	}

	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("invalid support point record: %w", err)
	}

	log.DebugContext(ctx, "successfully parsed report",
		slog.String("test_id", *record.TestID),
		slog.Int("output_count", len(record.SupportPoint.Output)),
	)

	return record, nil
}
