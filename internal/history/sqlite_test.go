package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pediasafe-screening-server/internal/domain"
)

func createTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	return store
}

func sampleRecord() *Record {
	req := domain.ScreeningRequest{
		AgeValue:    5,
		AgeUnit:     domain.AgeUnitYears,
		Indication:  "Asthma",
		Medications: []string{"Aspirin", "Salbutamol"},
	}
	result := domain.ScreeningResult{
		Inappropriate: []domain.InappropriateFinding{{
			Medication:     "Aspirin",
			AgeRestriction: "< 16 years",
			Condition:      "Any condition except Kawasaki disease",
			Rationale:      "Risk of Reye's syndrome in children under 16 years",
			Reference:      "POPI explicit criteria - Reye's syndrome prevention",
		}},
		Omissions:    []domain.OmissionFinding{},
		Interactions: []domain.InteractionFinding{},
	}
	return NewRecord(uuid.New().String(), req, result)
}

func TestNewSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "screenings.db")

	store, err := NewSQLiteStore(dbPath)

	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "Database file should exist")
}

func TestSQLiteStore_SaveAndGet(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()

	ctx := context.Background()
	record := sampleRecord()

	require.NoError(t, store.Save(ctx, record))

	loaded, err := store.Get(ctx, record.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, record.ID, loaded.ID)
	assert.Equal(t, record.Request, loaded.Request)
	assert.Equal(t, record.Result, loaded.Result)
	assert.Equal(t, 1, loaded.InappropriateCount)
	assert.Equal(t, 0, loaded.OmissionCount)
	assert.Equal(t, 0, loaded.InteractionCount)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()

	loaded, err := store.Get(context.Background(), uuid.New().String())

	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSQLiteStore_ListAndCount(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(ctx, sampleRecord()))
	}

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)

	records, err := store.List(ctx, 3, 0)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	rest, err := store.List(ctx, 3, 3)
	require.NoError(t, err)
	assert.Len(t, rest, 2)
}

func TestSQLiteStore_Delete(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()

	ctx := context.Background()
	record := sampleRecord()
	require.NoError(t, store.Save(ctx, record))

	require.NoError(t, store.Delete(ctx, record.ID))

	loaded, err := store.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestNewRecord_DerivesCounts(t *testing.T) {
	record := sampleRecord()

	assert.Equal(t, 1, record.InappropriateCount)
	assert.Equal(t, 0, record.OmissionCount)
	assert.Equal(t, 0, record.InteractionCount)
	assert.False(t, record.CreatedAt.IsZero())
}
