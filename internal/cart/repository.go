package cart

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("cart line not found")
)

// Repository provides access to persisted cart lines. Delete and DeleteByIDs
// succeed even when the targeted lines do not exist.
type Repository interface {
	List() ([]Line, error)
	GetByProduct(productID int) (Line, error)
	Insert(l Line) (Line, error)
	UpdateQuantity(id, quantity int) error
	Delete(id int) error
	DeleteByIDs(ids []int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Line
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) List() ([]Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Line, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByProduct(productID int) (Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.storage {
		if l.ProductID == productID {
			return l, nil
		}
	}
	return Line{}, ErrNotFound
}

func (r *InMemoryRepository) Insert(l Line) (Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l.ID == 0 {
		l.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, l)
	return l, nil
}

func (r *InMemoryRepository) UpdateQuantity(id, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage[i].Quantity = quantity
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	// deleting an unknown line is a no-op, not an error
	return nil
}

func (r *InMemoryRepository) DeleteByIDs(ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	drop := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.storage[:0]
	for _, l := range r.storage {
		if _, ok := drop[l.ID]; !ok {
			kept = append(kept, l)
		}
	}
	r.storage = kept
	return nil
}
