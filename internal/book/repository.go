package book

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("book not found")

type Repository interface {
	List() []Book
	ListByGrade(grade int) []Book
	GetByID(id string) (Book, error)
	// Update merges the non-nil patch fields onto the stored record and
	// returns the merged record. The id is never touched.
	Update(id string, patch Patch) (Book, error)
	Delete(id string) error
}

// InMemoryRepository is the catalog store. A single RWMutex guards the
// slice so concurrent updates and deletes cannot interleave a
// read-modify-write.
type InMemoryRepository struct {
	mu    sync.RWMutex
	books []Book
}

func NewInMemoryRepository(seed []Book) *InMemoryRepository {
	r := &InMemoryRepository{
		books: make([]Book, 0, len(seed)),
	}
	r.books = append(r.books, seed...)
	return r
}

func (r *InMemoryRepository) List() []Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, len(r.books))
	copy(out, r.books)
	return out
}

func (r *InMemoryRepository) ListByGrade(grade int) []Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, 0)
	for _, b := range r.books {
		if b.Grade == grade {
			out = append(out, b)
		}
	}
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.books {
		if b.ID == id {
			return b, nil
		}
	}
	return Book{}, ErrNotFound
}

func (r *InMemoryRepository) Update(id string, patch Patch) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.books {
		if r.books[i].ID != id {
			continue
		}
		b := r.books[i]
		if patch.Title != nil {
			b.Title = *patch.Title
		}
		if patch.Price != nil {
			b.Price = *patch.Price
		}
		if patch.Grade != nil {
			b.Grade = *patch.Grade
		}
		if patch.Description != nil {
			b.Description = *patch.Description
		}
		if patch.ImageURL != nil {
			b.ImageURL = *patch.ImageURL
		}
		r.books[i] = b
		return b, nil
	}
	return Book{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.books {
		if r.books[i].ID == id {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
