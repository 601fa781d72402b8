package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/specials-tracker/internal/entity"
)

func newSQLiteRepo(t *testing.T) *SQLRepository {
	t.Helper()
	ctx := context.Background()
	drv, err := OpenSQLite(ctx, ":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { Close(drv, nil, nil) })

	repo := NewSQLRepository(drv, nil)
	require.NoError(t, repo.EnsureSchema(ctx))
	return repo
}

func rec(bar, day, details, price string) entity.SpecialRecord {
	return entity.SpecialRecord{
		BarName:        bar,
		DayOfWeek:      day,
		SpecialDetails: details,
		Price:          price,
		SourceURL:      "https://example.com/" + bar,
	}
}

func TestSQLRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	rows := []entity.SpecialRecord{
		rec("Red Rock Saloon", "Monday", "$2 tacos", "2.00"),
		rec("Red Rock Saloon", "Tuesday", "Trivia", "Varies"),
		rec("Buck & Badger", "Friday", "Fish fry", "14.00"),
	}
	require.NoError(t, repo.InsertBatch(ctx, rows))

	got, err := repo.ListByBar(ctx, "Red Rock Saloon")
	require.NoError(t, err)
	assert.Equal(t, rows[:2], got)

	n, err := repo.DeleteByBar(ctx, "Red Rock Saloon")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err = repo.ListByBar(ctx, "Red Rock Saloon")
	require.NoError(t, err)
	assert.Empty(t, got)

	other, err := repo.ListByBar(ctx, "Buck & Badger")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestSQLRepositoryDeleteMissingBar(t *testing.T) {
	repo := newSQLiteRepo(t)

	n, err := repo.DeleteByBar(context.Background(), "Nobody")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSQLRepositoryEmptyBatchIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	require.NoError(t, repo.InsertBatch(ctx, nil))
	require.NoError(t, repo.InsertBatch(ctx, []entity.SpecialRecord{}))
}

func TestSQLRepositoryEnsureSchemaIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	require.NoError(t, repo.InsertBatch(ctx, []entity.SpecialRecord{rec("Tavern", "Sunday", "Bloody Mary bar", "8.00")}))
	require.NoError(t, repo.EnsureSchema(ctx))

	got, err := repo.ListByBar(ctx, "Tavern")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLRepositoryWithoutSchemaFails(t *testing.T) {
	ctx := context.Background()
	drv, err := OpenSQLite(ctx, "", nil)
	require.NoError(t, err)
	t.Cleanup(func() { Close(drv, nil, nil) })

	repo := NewSQLRepository(drv, nil)
	err = repo.InsertBatch(ctx, []entity.SpecialRecord{rec("Tavern", "Sunday", "x", "1.00")})
	assert.Error(t, err)
}

func TestSchemaStatementsByDialect(t *testing.T) {
	pg := schemaStatements("postgres")
	require.Len(t, pg, 2)
	assert.Contains(t, pg[0], "BIGSERIAL")

	lite := schemaStatements("sqlite3")
	assert.Contains(t, lite[0], "AUTOINCREMENT")
	assert.Contains(t, lite[1], "specials_bar_name_idx")
}
