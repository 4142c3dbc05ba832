package v1

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/support_reporter/internal/domain"
	"github.com/kurochkinivan/support_reporter/internal/supportpoint"
)

// maxBodySize bounds report bodies posted to the parse endpoint.
const maxBodySize = 1 << 20

type SupportPointsRepository interface {
	SupportPointsByTestID(ctx context.Context, testID string, limit, offset uint64) ([]*domain.ParsedRecord, int, error)
}

type FilesProvider interface {
	Files(ctx context.Context) ([]*domain.File, error)
	FilesByStatus(ctx context.Context, status domain.Status) ([]*domain.File, error)
}

type SupportPointsHandler struct {
	supportPointsRepository SupportPointsRepository
	filesProvider           FilesProvider
	clock                   func() time.Time
}

func NewSupportPointsHandler(
	supportPointsRepository SupportPointsRepository,
	filesProvider FilesProvider,
	clock func() time.Time,
) *SupportPointsHandler {
	return &SupportPointsHandler{
		supportPointsRepository: supportPointsRepository,
		filesProvider:           filesProvider,
		clock:                   clock,
	}
}

type GetSupportPointsByTestIDResponse struct {
	SupportPoints []*domain.ParsedRecord `json:"support_points"`
	Pagination    Pagination             `json:"pagination"`
}

func (h *SupportPointsHandler) GetSupportPointsByTestID(w http.ResponseWriter, r *http.Request) {
	testID := chi.URLParam(r, "test_id")

	page, limit, err := h.parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	offset := (page - 1) * limit

	records, total, err := h.supportPointsRepository.SupportPointsByTestID(r.Context(), testID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if records == nil {
		records = []*domain.ParsedRecord{}
	}

	writeJSON(w, http.StatusOK, GetSupportPointsByTestIDResponse{
		SupportPoints: records,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int(limit) - 1) / int(limit),
		},
	})
}

type ParseResponse struct {
	Record      *domain.ParsedRecord     `json:"record"`
	Diagnostics supportpoint.Diagnostics `json:"diagnostics"`
}

// Parse converts the raw report body in the request into a record without
// storing it.
func (h *SupportPointsHandler) Parse(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "report body is too large", http.StatusRequestEntityTooLarge)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, diag := supportpoint.Extract(string(body), h.clock())

	writeJSON(w, http.StatusOK, ParseResponse{
		Record:      record,
		Diagnostics: diag,
	})
}

type GetFilesResponse struct {
	Files []*domain.File `json:"files"`
}

// GetFiles lists ingested report files, optionally filtered by ?status=.
func (h *SupportPointsHandler) GetFiles(w http.ResponseWriter, r *http.Request) {
	var (
		files []*domain.File
		err   error
	)

	if status := domain.Status(r.URL.Query().Get("status")); status != "" {
		if !status.Valid() {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
		files, err = h.filesProvider.FilesByStatus(r.Context(), status)
	} else {
		files, err = h.filesProvider.Files(r.Context())
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if files == nil {
		files = []*domain.File{}
	}

	writeJSON(w, http.StatusOK, GetFilesResponse{Files: files})
}

func (h *SupportPointsHandler) parsePagination(r *http.Request) (page uint64, limit uint64, err error) {
	page, limit = 1, 10

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, errors.New("invalid page")
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil || limit < 1 || limit > 100 {
			return 0, 0, errors.New("invalid limit, must be in [1;100]")
		}
	}

	return page, limit, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
