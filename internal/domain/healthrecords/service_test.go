package healthrecords

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare-marketplace/internal/platform/apperr"
)

type testRepo struct {
	byPet map[int64]HealthRecord
}

func (r *testRepo) Upsert(_ context.Context, rec HealthRecord) (HealthRecord, error) {
	r.byPet[rec.PetID] = rec
	return rec, nil
}

func (r *testRepo) GetByPet(_ context.Context, petID int64) (HealthRecord, error) {
	rec, ok := r.byPet[petID]
	if !ok {
		return HealthRecord{}, apperr.ErrNotFound
	}
	return rec, nil
}

// petID -> ownerID
type testPets map[int64]int64

func (p testPets) OwnerOf(_ context.Context, petID int64) (int64, error) {
	owner, ok := p[petID]
	if !ok {
		return 0, apperr.New(apperr.ErrNotFound, "pets.get", "pet not found")
	}
	return owner, nil
}

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{byPet: map[int64]HealthRecord{}}
	svc := NewService(repo, testPets{10: 1})
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestService_Upsert_OwnerOnly(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, 2, 10, UpsertInput{Veterinarian: "Dra. Paz"})
	require.ErrorIs(t, err, apperr.ErrForbidden)
	assert.Empty(t, repo.byPet)

	rec, err := svc.Upsert(ctx, 1, 10, UpsertInput{
		Veterinarian: " Dra. Paz ",
		Vaccinations: []string{"rabies", " ", "parvo"},
		LastCheckup:  "2025-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dra. Paz", rec.Veterinarian)
	assert.Equal(t, []string{"rabies", "parvo"}, rec.Vaccinations)
	assert.Equal(t, SourceManual, rec.Source)
	require.NotNil(t, rec.LastCheckup)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), *rec.LastCheckup)
	assert.EqualValues(t, 1, rec.UpdatedBy)
}

func TestService_Upsert_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, 1, 10, UpsertInput{LastCheckup: "01/02/2025"})
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.Upsert(ctx, 1, 10, UpsertInput{Source: "fax"})
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.Upsert(ctx, 1, 99, UpsertInput{})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Upsert(ctx, 0, 10, UpsertInput{})
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestService_Get(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Get(ctx, 1, 10)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, "health record not found", apperr.Message(err))

	_, err = svc.Upsert(ctx, 1, 10, UpsertInput{Notes: "sano", Source: SourceClinic})
	require.NoError(t, err)

	rec, err := svc.Get(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "sano", rec.Notes)
	assert.Equal(t, SourceClinic, rec.Source)

	_, err = svc.Get(ctx, 2, 10)
	require.ErrorIs(t, err, apperr.ErrForbidden)
}
