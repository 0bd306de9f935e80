package caregivers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare-marketplace/internal/platform/apperr"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Caregiver
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Caregiver{}}
}

func (r *testRepo) Create(_ context.Context, c Caregiver) (Caregiver, error) {
	for _, existing := range r.byID {
		if strings.EqualFold(existing.Username, c.Username) {
			return Caregiver{}, apperr.ErrConflict
		}
	}
	r.nextID++
	c.ID = r.nextID
	r.byID[c.ID] = c
	return c, nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (Caregiver, error) {
	c, ok := r.byID[id]
	if !ok {
		return Caregiver{}, apperr.ErrNotFound
	}
	return c, nil
}

func (r *testRepo) List(_ context.Context) ([]Caregiver, error) {
	out := make([]Caregiver, 0, len(r.byID))
	for id := int64(1); id <= r.nextID; id++ {
		if c, ok := r.byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *testRepo) SetActive(_ context.Context, id int64, active bool) (Caregiver, error) {
	c, ok := r.byID[id]
	if !ok {
		return Caregiver{}, apperr.ErrNotFound
	}
	c.IsActive = active
	r.byID[id] = c
	return c, nil
}

// -------------------------
// Tests
// -------------------------

func TestTypeSet_ParseAndString(t *testing.T) {
	s := ParseTypeSet(" Dog, cat,,DOG ,bird ")
	assert.Equal(t, TypeSet{"dog", "cat", "bird"}, s)
	assert.Equal(t, "dog,cat,bird", s.String())

	assert.True(t, s.Contains("CAT"))
	assert.False(t, s.Contains("fish"))
	assert.Empty(t, ParseTypeSet(""))
}

func TestService_Register(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	c, err := svc.Register(context.Background(), RegisterInput{
		Username: " ana ",
		Password: "pw",
		PetTypes: []string{"Dog", "cat", "dog"},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, c.ID)
	assert.Equal(t, "ana", c.Username)
	assert.True(t, c.IsActive)
	assert.Equal(t, TypeSet{"dog", "cat"}, c.PetTypes)
	assert.NotEqual(t, "pw", repo.byID[1].PasswordHash)
}

func TestService_Register_Validation(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "ana", Password: "pw"})
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.Register(ctx, RegisterInput{Username: "ana", Password: "pw", PetTypes: []string{" "}})
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.Register(ctx, RegisterInput{Username: "ana", Password: "pw", PetTypes: []string{"dog,cat"}})
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.Register(ctx, RegisterInput{Username: "", Password: "pw", PetTypes: []string{"dog"}})
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.Register(ctx, RegisterInput{Username: "ana", Password: "", PetTypes: []string{"dog"}})
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "ana", Password: "pw", PetTypes: []string{"dog"}})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "ana", Password: "pw", PetTypes: []string{"cat"}})
	require.ErrorIs(t, err, apperr.ErrConflict)
}

func TestService_SetActive(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	c, err := svc.Register(ctx, RegisterInput{Username: "ana", Password: "pw", PetTypes: []string{"dog"}})
	require.NoError(t, err)

	c, err = svc.SetActive(ctx, c.ID, false)
	require.NoError(t, err)
	assert.False(t, c.IsActive)

	_, err = svc.SetActive(ctx, 99, true)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, "caregiver not found", apperr.Message(err))
}

func TestService_List_OrderedByID(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	for _, name := range []string{"ana", "beto", "carla"} {
		_, err := svc.Register(ctx, RegisterInput{Username: name, Password: "pw", PetTypes: []string{"dog"}})
		require.NoError(t, err)
	}

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "ana", items[0].Username)
	assert.Equal(t, "carla", items[2].Username)
}
