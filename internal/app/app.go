package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/support_reporter/internal/config"
	v1 "github.com/kurochkinivan/support_reporter/internal/controller/http/v1"
	"github.com/kurochkinivan/support_reporter/internal/domain"
	"github.com/kurochkinivan/support_reporter/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/support_reporter/internal/pipeline"
	"github.com/kurochkinivan/support_reporter/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const (
	filesBuffer        = 100
	parseResultsBuffer = 50
	reportsBuffer      = 100
)

type App struct {
	log   *slog.Logger
	cfg   *config.Config
	clock func() time.Time
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log:   log,
		cfg:   cfg,
		clock: time.Now,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("watch_dir", a.cfg.App.WatchDirectory),
		slog.String("reports_dir", a.cfg.App.ReportsDirectory),
		slog.Duration("scan_interval", a.cfg.App.DirectoryScanInterval),
		slog.Any("report_formats", a.cfg.App.ReportFormats),
	)

	generators, err := ReportGenerators(a.cfg.App.ReportFormats)
	if err != nil {
		return err
	}

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	filesRepository := postgresql.NewFilesRepository(pool)
	supportPointsRepository := postgresql.NewSupportPointsRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	if err := filesRepository.ResetProcessingFiles(ctx); err != nil {
		return fmt.Errorf("failed to reset processing files: %w", err)
	}

	return a.startPipeline(ctx, filesRepository, supportPointsRepository, txManager, generators)
}

// ReportGenerators maps configured format names to generators.
func ReportGenerators(formats []string) ([]pipeline.ReportGenerator, error) {
	generators := make([]pipeline.ReportGenerator, 0, len(formats))

	for _, format := range formats {
		switch format {
		case "pdf":
			generators = append(generators, report_generator.NewPDF())
		case "csv":
			generators = append(generators, report_generator.NewCSV())
		default:
			return nil, fmt.Errorf("unknown report format %q", format)
		}
	}

	return generators, nil
}

func (a *App) startPipeline(
	ctx context.Context,
	filesRepo *postgresql.FilesRepository,
	supportPointsRepo *postgresql.SupportPointsRepository,
	txManager *postgresql.TxManager,
	generators []pipeline.ReportGenerator,
) error {
	files := make(chan string, filesBuffer)
	parseResults := make(chan *domain.ParseResult, parseResultsBuffer)
	reports := make(chan *domain.ParseResult, reportsBuffer)

	scanner := pipeline.NewScanner(
		a.log,
		a.cfg.WatchDirectory,
		a.cfg.DirectoryScanInterval,
		files,
		filesRepo,
		filesRepo,
	)
	parser := pipeline.NewParser(a.log, a.clock, files, parseResults)
	writer := pipeline.NewWriter(a.log, parseResults, reports, filesRepo, supportPointsRepo, txManager)
	reporter := pipeline.NewReporter(a.log, a.cfg.ReportsDirectory, reports, generators...)
	server := v1.NewServer(a.cfg.HTTP, supportPointsRepo, filesRepo, a.clock)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "scanner started")
		return scanner.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "parser started")
		return parser.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "writer started")
		return writer.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "pipeline stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "pipeline stopped gracefully")

	return nil
}
