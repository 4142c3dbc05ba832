package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/support_reporter/internal/domain"
)

const (
	TableSupportPoints = "support_points"
	TableOutputEntries = "output_entries"
)

type supportPointRow struct {
	ID             int64   `db:"id"`
	TestID         string  `db:"test_id"`
	AT             string  `db:"at"`
	Browser        string  `db:"browser"`
	ATVersion      *string `db:"at_version"`
	BrowserVersion *string `db:"browser_version"`
	OSVersion      *string `db:"os_version"`
	Date           string  `db:"date"`
	Support        *string `db:"support"`
	Notes          *string `db:"notes"`
}

type outputEntryRow struct {
	SupportPointID int64   `db:"support_point_id"`
	Position       int     `db:"position"`
	Command        *string `db:"command"`
	CommandName    *string `db:"command_name"`
	Output         *string `db:"output"`
	Result         *string `db:"result"`
}

type SupportPointsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewSupportPointsRepository(pool *pgxpool.Pool) *SupportPointsRepository {
	return &SupportPointsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveRecord stores the support point and its output entries. Call it inside
// a transaction to keep both tables consistent.
func (r *SupportPointsRepository) SaveRecord(ctx context.Context, sourceFile string, record *domain.ParsedRecord) error {
	db := extractDB(ctx, r.pool)

	sp := record.SupportPoint

	sql, args, err := r.qb.
		Insert(TableSupportPoints).
		Columns(
			"source_file",
			"test_id",
			"at",
			"browser",
			"at_version",
			"browser_version",
			"os_version",
			"date",
			"support",
			"notes",
		).
		Values(
			sourceFile,
			domain.Value(record.TestID),
			domain.Value(record.AT),
			domain.Value(record.Browser),
			sp.ATVersion,
			sp.BrowserVersion,
			sp.OSVersion,
			sp.Date,
			sp.Support,
			sp.Notes,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	var id int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return scanRowError(err)
	}

	if len(sp.Output) == 0 {
		return nil
	}

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableOutputEntries}, []string{
		"support_point_id",
		"position",
		"command",
		"command_name",
		"output",
		"result",
	}, pgx.CopyFromSlice(len(sp.Output), func(i int) ([]any, error) {
		e := sp.Output[i]
		return []any{id, i + 1, e.Command, e.CommandName, e.Output, e.Result}, nil
	}))
	if err != nil {
		return copyFromError(TableOutputEntries, err)
	}

	if copied != int64(len(sp.Output)) {
		return copyFromError(TableOutputEntries,
			fmt.Errorf("copied %d rows, expected %d", copied, len(sp.Output)))
	}

	return nil
}

func (r *SupportPointsRepository) SupportPointsByTestID(
	ctx context.Context,
	testID string,
	limit, offset uint64,
) ([]*domain.ParsedRecord, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableSupportPoints).
		Where(sq.Eq{"test_id": testID}).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(
			"id",
			"test_id",
			"at",
			"browser",
			"at_version",
			"browser_version",
			"os_version",
			"date",
			"support",
			"notes",
		).
		From(TableSupportPoints).
		Where(sq.Eq{"test_id": testID}).
		OrderBy("id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	points, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[supportPointRow])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	entries, err := r.outputEntries(ctx, db, points)
	if err != nil {
		return nil, -1, err
	}

	records := make([]*domain.ParsedRecord, 0, len(points))
	for _, p := range points {
		records = append(records, p.toRecord(entries[p.ID]))
	}

	return records, total, nil
}

func (r *SupportPointsRepository) outputEntries(
	ctx context.Context,
	db DBTX,
	points []*supportPointRow,
) (map[int64][]*domain.OutputEntry, error) {
	if len(points) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(points))
	for _, p := range points {
		ids = append(ids, p.ID)
	}

	sql, args, err := r.qb.
		Select(
			"support_point_id",
			"position",
			"command",
			"command_name",
			"output",
			"result",
		).
		From(TableOutputEntries).
		Where(sq.Eq{"support_point_id": ids}).
		OrderBy("support_point_id ASC", "position ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	entryRows, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[outputEntryRow])
	if err != nil {
		return nil, collectRowsError(err)
	}

	entries := make(map[int64][]*domain.OutputEntry, len(points))
	for _, e := range entryRows {
		entries[e.SupportPointID] = append(entries[e.SupportPointID], &domain.OutputEntry{
			Command:     e.Command,
			CommandName: e.CommandName,
			Output:      e.Output,
			Result:      e.Result,
		})
	}

	return entries, nil
}

func (p *supportPointRow) toRecord(output []*domain.OutputEntry) *domain.ParsedRecord {
	if output == nil {
		output = []*domain.OutputEntry{}
	}

	return &domain.ParsedRecord{
		TestID:  &p.TestID,
		AT:      &p.AT,
		Browser: &p.Browser,
		SupportPoint: domain.SupportPoint{
			ATVersion:      p.ATVersion,
			BrowserVersion: p.BrowserVersion,
			OSVersion:      p.OSVersion,
			Date:           p.Date,
			Output:         output,
			Support:        p.Support,
			Notes:          p.Notes,
		},
	}
}
