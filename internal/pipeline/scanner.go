package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/kurochkinivan/support_reporter/internal/domain"
)

// reportExtensions lists the file extensions treated as report bodies.
var reportExtensions = []string{".md", ".txt"}

type Scanner struct {
	log           *slog.Logger
	watchDir      string
	scanInterval  time.Duration
	files         chan<- string
	filesProvider FilesProvider
	fileUpdater   FileUpdater
}

func NewScanner(
	log *slog.Logger,
	watchDir string,
	scanInterval time.Duration,
	files chan<- string,
	filesProvider FilesProvider,
	fileUpdater FileUpdater,
) *Scanner {
	return &Scanner{
		log:           log,
		watchDir:      watchDir,
		scanInterval:  scanInterval,
		files:         files,
		filesProvider: filesProvider,
		fileUpdater:   fileUpdater,
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	defer close(s.files)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scan cycle started")

			err := s.scanFiles(ctx)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to scan files", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scanFiles(ctx context.Context) error {
	filesMap, err := s.extractFilesFromDB(ctx)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(s.watchDir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", s.watchDir, err)
	}

	for _, entry := range entries {
		err := s.processEntry(ctx, entry, filesMap)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err != nil {
			s.log.ErrorContext(ctx, "failed process entry, skipping file",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
			continue
		}
	}

	return nil
}

func (s *Scanner) extractFilesFromDB(ctx context.Context) (map[string]*domain.File, error) {
	files, err := s.filesProvider.Files(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get files: %w", err)
	}

	filesMap := make(map[string]*domain.File, len(files))
	for _, file := range files {
		filesMap[file.Name] = file
	}

	return filesMap, nil
}

func (s *Scanner) processEntry(ctx context.Context, entry os.DirEntry, filesMap map[string]*domain.File) error {
	if entry.IsDir() || !isReportFile(entry.Name()) {
		return nil
	}

	if known, ok := filesMap[entry.Name()]; ok {
		queue, err := needsProcessing(entry, known)
		if err != nil || !queue {
			return err
		}
	}

	err := s.fileUpdater.UpdateOrCreateFile(ctx, &domain.File{
		Name:   entry.Name(),
		Status: domain.StatusProcessing,
	})
	if err != nil {
		return fmt.Errorf("failed to update file status: %w", err)
	}

	s.log.DebugContext(ctx, "updated file status to processing", slog.String("filename", entry.Name()))

	select {
	case s.files <- filepath.Join(s.watchDir, entry.Name()):
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

// needsProcessing reports whether a known file should be queued again. Done
// and failed reports are re-ingested once they are edited.
func needsProcessing(entry os.DirEntry, known *domain.File) (bool, error) {
	switch known.Status {
	case domain.StatusPending:
		return true, nil
	case domain.StatusDone, domain.StatusError:
		if known.ProcessedAt == nil {
			return false, nil
		}

		info, err := entry.Info()
		if err != nil {
			return false, fmt.Errorf("failed to stat file: %w", err)
		}

		return info.ModTime().After(*known.ProcessedAt), nil
	default:
		return false, nil
	}
}

func isReportFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}

	return slices.Contains(reportExtensions, strings.ToLower(filepath.Ext(name)))
}
