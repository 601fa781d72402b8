package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/joseph-ayodele/specials-tracker/internal/entity"
)

const (
	TableSpecials = "specials"

	colID             = "id"
	colBarName        = "bar_name"
	colDayOfWeek      = "day_of_week"
	colSpecialDetails = "special_details"
	colPrice          = "price"
	colSourceURL      = "source_url"
)

var (
	_ SpecialsRepository = (*SQLRepository)(nil)
	_ SchemaInitializer  = (*SQLRepository)(nil)
)

// SpecialsRepository is the record store used by the pipeline.
type SpecialsRepository interface {
	DeleteByBar(ctx context.Context, barName string) (int64, error)
	InsertBatch(ctx context.Context, rows []entity.SpecialRecord) error
	ListByBar(ctx context.Context, barName string) ([]entity.SpecialRecord, error)
}

// SchemaInitializer is implemented by stores that can create their own table.
type SchemaInitializer interface {
	EnsureSchema(ctx context.Context) error
}

// SQLRepository stores specials in Postgres or SQLite through ent's SQL builders.
type SQLRepository struct {
	drv    *entsql.Driver
	logger *slog.Logger
}

// NewSQLRepository returns a SQL-backed repository. The SQL dialect is
// taken from the driver (postgres or sqlite).
func NewSQLRepository(drv *entsql.Driver, logger *slog.Logger) *SQLRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLRepository{drv: drv, logger: logger}
}

func (r *SQLRepository) builder() *entsql.DialectBuilder {
	return entsql.Dialect(r.drv.Dialect())
}

// EnsureSchema creates the specials table and its bar_name index if missing.
func (r *SQLRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements(r.drv.Dialect()) {
		if err := r.drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			r.logger.Error("failed to apply schema", "error", err)
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	r.logger.Info("schema ready", "table", TableSpecials, "dialect", r.drv.Dialect())
	return nil
}

func schemaStatements(d string) []string {
	idCol := "id BIGSERIAL PRIMARY KEY"
	createdAt := "created_at TIMESTAMPTZ NOT NULL DEFAULT now()"
	if d == dialect.SQLite {
		idCol = "id INTEGER PRIMARY KEY AUTOINCREMENT"
		createdAt = "created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP"
	}
	return []string{
		`CREATE TABLE IF NOT EXISTS specials (
	` + idCol + `,
	bar_name TEXT NOT NULL,
	day_of_week TEXT NOT NULL,
	special_details TEXT NOT NULL,
	price TEXT NOT NULL,
	source_url TEXT NOT NULL,
	` + createdAt + `
)`,
		`CREATE INDEX IF NOT EXISTS specials_bar_name_idx ON specials (bar_name)`,
	}
}

// DeleteByBar removes every record for a venue and returns how many were removed.
func (r *SQLRepository) DeleteByBar(ctx context.Context, barName string) (int64, error) {
	query, args := r.builder().Delete(TableSpecials).
		Where(entsql.EQ(colBarName, barName)).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		r.logger.Error("failed to delete specials", "bar_name", barName, "error", err)
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		n = -1
	}
	r.logger.Debug("deleted specials", "bar_name", barName, "rows", n)
	return n, nil
}

// InsertBatch writes rows in a single multi-row insert. An empty batch is a no-op.
func (r *SQLRepository) InsertBatch(ctx context.Context, rows []entity.SpecialRecord) error {
	if len(rows) == 0 {
		return nil
	}
	ins := r.builder().Insert(TableSpecials).
		Columns(colBarName, colDayOfWeek, colSpecialDetails, colPrice, colSourceURL)
	for _, rec := range rows {
		ins.Values(rec.BarName, rec.DayOfWeek, rec.SpecialDetails, rec.Price, rec.SourceURL)
	}
	query, args := ins.Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		r.logger.Error("failed to insert specials", "bar_name", rows[0].BarName, "rows", len(rows), "error", err)
		return err
	}
	return nil
}

// ListByBar returns a venue's records in insertion order.
func (r *SQLRepository) ListByBar(ctx context.Context, barName string) ([]entity.SpecialRecord, error) {
	t := entsql.Table(TableSpecials)
	query, args := r.builder().
		Select(colBarName, colDayOfWeek, colSpecialDetails, colPrice, colSourceURL).
		From(t).
		Where(entsql.EQ(colBarName, barName)).
		OrderBy(colID).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		r.logger.Error("failed to list specials", "bar_name", barName, "error", err)
		return nil, err
	}
	defer rows.Close()

	var out []entity.SpecialRecord
	for rows.Next() {
		var rec entity.SpecialRecord
		if err := rows.Scan(&rec.BarName, &rec.DayOfWeek, &rec.SpecialDetails, &rec.Price, &rec.SourceURL); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
