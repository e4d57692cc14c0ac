package repository

import (
	"sync"

	"github.com/forgo/volunteer/internal/model"
)

// UserRepository stores users in memory, keyed by email
type UserRepository struct {
	mu    sync.Mutex
	users []model.User
}

// NewUserRepository creates an empty user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{users: []model.User{}}
}

// Save inserts user or replaces the user registered under the same email
func (r *UserRepository) Save(user model.User) model.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(user.Base().Email); i >= 0 {
		r.users[i] = user
		return user
	}
	r.users = append(r.users, user)
	return user
}

// GetUserByEmail returns the user registered under email, or nil
func (r *UserRepository) GetUserByEmail(email string) model.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(email); i >= 0 {
		return r.users[i]
	}
	return nil
}

// DeleteByEmail removes the user registered under email, if any
func (r *UserRepository) DeleteByEmail(email string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(email); i >= 0 {
		r.users = append(r.users[:i], r.users[i+1:]...)
	}
}

// GetAll returns every user in registration order. The slice is a snapshot:
// later saves and deletes do not change it, but the user values are
// shared with the repository.
func (r *UserRepository) GetAll() []model.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out
}

// indexOf must be called with mu held
func (r *UserRepository) indexOf(email string) int {
	for i, u := range r.users {
		if u.Base().Email == email {
			return i
		}
	}
	return -1
}
