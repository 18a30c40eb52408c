package memory

import (
	"time"

	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository"
)

type UserRepository struct {
	s *Store
}

func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) Create(user *model.User) *model.User {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *user
	stored.ID = r.s.ids.Next("user")
	stored.CreatedAt = time.Now().UTC()
	r.s.users = append(r.s.users, &stored)
	return &stored
}

func (r *UserRepository) GetAll() []*model.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]*model.User(nil), r.s.users...)
}
