package memory

import (
	"context"

	"fibertrack/internal/entities"
	apperrors "fibertrack/pkg/errors"
)

type UserStore struct {
	s *Store
}

func (u *UserStore) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	user, ok := u.s.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (u *UserStore) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for _, user := range u.s.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (u *UserStore) Create(ctx context.Context, user entities.User) (*entities.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	u.s.nextUserID++
	user.ID = u.s.nextUserID
	u.s.users[user.ID] = user
	return &user, nil
}
