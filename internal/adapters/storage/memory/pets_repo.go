package memory

import (
	"context"
	"sort"
	"sync"

	"petcare-marketplace/internal/domain/pets"
	"petcare-marketplace/internal/platform/apperr"
)

type PetRepo struct {
	mu     sync.RWMutex
	byID   map[int64]pets.Pet
	nextID int64
}

func NewPetRepo() *PetRepo {
	return &PetRepo{
		byID: make(map[int64]pets.Pet),
	}
}

func (r *PetRepo) Create(_ context.Context, p pets.Pet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *PetRepo) GetByID(_ context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, apperr.ErrNotFound
	}
	return p, nil
}

func (r *PetRepo) List(_ context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedPets(r.byID, func(pets.Pet) bool { return true }), nil
}

func (r *PetRepo) ListByOwner(_ context.Context, ownerID int64) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedPets(r.byID, func(p pets.Pet) bool { return p.OwnerID == ownerID }), nil
}

func (r *PetRepo) CountByOwner(_ context.Context, ownerID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func sortedPets(m map[int64]pets.Pet, keep func(pets.Pet) bool) []pets.Pet {
	out := make([]pets.Pet, 0, len(m))
	for _, p := range m {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// OwnerTx serializa RunForOwner con un mutex por dueño.
// No hay rollback: fn solo hace a lo sumo un insert al final.
type OwnerTx struct {
	users *UserRepo
	pets  *PetRepo

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewOwnerTx(users *UserRepo, pets *PetRepo) *OwnerTx {
	return &OwnerTx{
		users: users,
		pets:  pets,
		locks: make(map[int64]*sync.Mutex),
	}
}

func (t *OwnerTx) RunForOwner(ctx context.Context, ownerID int64, fn func(ctx context.Context, repo pets.Repository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l := t.lockFor(ownerID)
	l.Lock()
	defer l.Unlock()

	if !t.users.exists(ownerID) {
		return apperr.ErrNotFound
	}
	return fn(ctx, t.pets)
}

// lockFor no poda el mapa: queda un mutex por dueño que alguna vez adoptó,
// acotado por la cantidad de usuarios.
func (t *OwnerTx) lockFor(ownerID int64) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.locks[ownerID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[ownerID] = l
	}
	return l
}
