package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/support_reporter/internal/domain"
)

type Reporter struct {
	log        *slog.Logger
	outputDir  string
	reports    <-chan *domain.ParseResult
	generators []ReportGenerator
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	reports <-chan *domain.ParseResult,
	generators ...ReportGenerator,
) *Reporter {
	return &Reporter{
		log:        log,
		outputDir:  outputDir,
		reports:    reports,
		generators: generators,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case result, ok := <-r.reports:
			if !ok {
				return nil
			}

			if result.Record == nil {
				continue
			}

			log := r.log.With(
				slog.String("filename", result.Filename),
				slog.String("test_id", domain.Value(result.Record.TestID)),
			)

			log.InfoContext(ctx, "received support point, generating reports")

			if err := r.processResult(result); err != nil {
				log.ErrorContext(ctx, "failed to generate report", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Reporter) processResult(result *domain.ParseResult) error {
	name := ReportName(result.Record)

	var errs []error
	for _, g := range r.generators {
		path := filepath.Join(r.outputDir, name+g.Extension())

		if err := g.GenerateReport(path, filepath.Base(result.Filename), result.Record); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", g.Extension(), err))
		}
	}

	return errors.Join(errs...)
}

// ReportName builds a file name stem of the form <testId>_<at>_<browser>.
// Characters outside [A-Za-z0-9._-] are replaced with '_'.
func ReportName(record *domain.ParsedRecord) string {
	parts := []string{
		domain.Value(record.TestID),
		domain.Value(record.AT),
		domain.Value(record.Browser),
	}

	for i, p := range parts {
		if p == "" {
			p = "unknown"
		}
		parts[i] = strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
				return r
			default:
				return '_'
			}
		}, p)
	}

	return strings.Join(parts, "_")
}
