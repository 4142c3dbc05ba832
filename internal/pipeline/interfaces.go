package pipeline

import (
	"context"

	"github.com/kurochkinivan/support_reporter/internal/domain"
)

type FilesProvider interface {
	Files(ctx context.Context) ([]*domain.File, error)
}

type FileUpdater interface {
	UpdateOrCreateFile(ctx context.Context, file *domain.File) error
}

type RecordSaver interface {
	SaveRecord(ctx context.Context, sourceFile string, record *domain.ParsedRecord) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReportGenerator interface {
	Extension() string
	GenerateReport(outputPath, sourceFile string, record *domain.ParsedRecord) error
}
