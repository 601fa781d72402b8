package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/supabase-community/postgrest-go"

	"github.com/joseph-ayodele/specials-tracker/internal/entity"
)

var _ SpecialsRepository = (*SupabaseRepository)(nil)

// SupabaseRepository talks to the specials table through Supabase's PostgREST API.
type SupabaseRepository struct {
	client *postgrest.Client
	logger *slog.Logger
}

// NewSupabaseRepository points a PostgREST client at <projectURL>/rest/v1,
// authenticated with the project key.
func NewSupabaseRepository(projectURL, key string, logger *slog.Logger) *SupabaseRepository {
	if logger == nil {
		logger = slog.Default()
	}
	restURL := strings.TrimRight(projectURL, "/") + "/rest/v1/"
	client := postgrest.NewClient(restURL, "public", map[string]string{"apikey": key}).SetAuthToken(key)
	return &SupabaseRepository{client: client, logger: logger}
}

// DeleteByBar removes a venue's rows and returns how many PostgREST reported.
func (r *SupabaseRepository) DeleteByBar(ctx context.Context, barName string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	start := time.Now()
	body, _, err := r.client.From(TableSpecials).
		Delete("representation", "").
		Eq(colBarName, barName).
		Execute()
	if err != nil {
		r.logger.Error("failed to delete specials", "bar_name", barName, "error", err)
		return 0, fmt.Errorf("delete %s: %w", TableSpecials, err)
	}

	var deleted []json.RawMessage
	if err := json.Unmarshal(body, &deleted); err != nil {
		return -1, nil
	}
	r.logger.Debug("supabase.deleted", "bar_name", barName, "rows", len(deleted), "elapsed_ms", time.Since(start).Milliseconds())
	return int64(len(deleted)), nil
}

// InsertBatch posts rows as one JSON array. An empty batch is a no-op.
func (r *SupabaseRepository) InsertBatch(ctx context.Context, rows []entity.SpecialRecord) error {
	if len(rows) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, _, err := r.client.From(TableSpecials).Insert(rows, false, "", "minimal", "").Execute(); err != nil {
		r.logger.Error("failed to insert specials", "bar_name", rows[0].BarName, "rows", len(rows), "error", err)
		return fmt.Errorf("insert %s: %w", TableSpecials, err)
	}
	return nil
}

// ListByBar selects a venue's rows ordered by id.
func (r *SupabaseRepository) ListByBar(ctx context.Context, barName string) ([]entity.SpecialRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	columns := strings.Join([]string{colBarName, colDayOfWeek, colSpecialDetails, colPrice, colSourceURL}, ",")
	body, _, err := r.client.From(TableSpecials).
		Select(columns, "", false).
		Eq(colBarName, barName).
		Order(colID, &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", TableSpecials, err)
	}
	var out []entity.SpecialRecord
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	return out, nil
}
