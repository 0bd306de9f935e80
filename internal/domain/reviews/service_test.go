package reviews

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare-marketplace/internal/domain/caregivers"
	"petcare-marketplace/internal/platform/apperr"
)

type testRepo struct {
	items []Review
}

func (r *testRepo) Create(_ context.Context, rv Review) (Review, error) {
	rv.ID = int64(len(r.items) + 1)
	r.items = append(r.items, rv)
	return rv, nil
}

func (r *testRepo) ListByCaregiver(_ context.Context, caregiverID int64) ([]Review, error) {
	var out []Review
	for _, rv := range r.items {
		if rv.CaregiverID == caregiverID {
			out = append(out, rv)
		}
	}
	return out, nil
}

type testCaregivers map[int64]bool

func (c testCaregivers) GetByID(_ context.Context, id int64) (caregivers.Caregiver, error) {
	if !c[id] {
		return caregivers.Caregiver{}, apperr.ErrNotFound
	}
	return caregivers.Caregiver{ID: id}, nil
}

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{}
	return NewService(repo, testCaregivers{1: true, 2: true}), repo
}

func TestService_Submit_RatingBounds(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Submit(ctx, 1, 1, rating, "x")
		require.ErrorIs(t, err, apperr.ErrInvalidArgument, "rating %d", rating)
	}
	assert.Empty(t, repo.items)

	for _, rating := range []int{1, 5} {
		rv, err := svc.Submit(ctx, 1, 1, rating, " bien ")
		require.NoError(t, err, "rating %d", rating)
		assert.Equal(t, rating, rv.Rating)
		assert.Equal(t, "bien", rv.Comment)
	}
	assert.Len(t, repo.items, 2)
}

func TestService_Submit_UnknownCaregiver(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Submit(context.Background(), 1, 99, 4, "")
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Empty(t, repo.items)
}

func TestService_Submit_RequiresOwner(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Submit(context.Background(), 0, 1, 4, "")
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestService_List(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	items, err := svc.List(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	_, err = svc.Submit(ctx, 1, 2, 3, "ok")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, 5, 2, 4, "muy bien")
	require.NoError(t, err)

	items, err = svc.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.EqualValues(t, 1, items[0].OwnerID)
	assert.EqualValues(t, 5, items[1].OwnerID)

	_, err = svc.List(ctx, 99)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
