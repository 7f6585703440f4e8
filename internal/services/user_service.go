package services

import (
	"errors"

	"github.com/dailydiet/daily-diet-api/internal/dto"
	"github.com/dailydiet/daily-diet-api/internal/models"
	"github.com/dailydiet/daily-diet-api/internal/repository"
	"github.com/dailydiet/daily-diet-api/internal/validation"
	"github.com/google/uuid"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates an account and issues its permanent session credential in
// the same step. The email pre-check is advisory; the unique index on the
// email column is what actually prevents a duplicate slipping through a
// concurrent registration.
func (s *UserService) Register(req *dto.CreateUserRequest) (*models.User, error) {
	if err := validation.CreateUser(req); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmail(*req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user := &models.User{
		ID:        uuid.New(),
		SessionID: uuid.New(),
		Username:  *req.Username,
		Email:     *req.Email,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update applies a partial update. A present email is re-validated for
// uniqueness, excluding the account itself so a no-op email write succeeds.
func (s *UserService) Update(id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	if err := validation.UpdateUser(req); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.users.FindByEmail(*req.Email)
		if err == nil && existing.ID != user.ID {
			return nil, ErrEmailTaken
		}
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Username != nil {
		user.Username = *req.Username
	}

	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(id uuid.UUID) error {
	if err := s.users.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
