package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Jonathan-dev2002/minishop-api/apperrors"
	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/store"
)

type UserService interface {
	GetMe(ctx context.Context, id uuid.UUID) (*models.UserResponse, error)
	UpdateMe(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.UserResponse, error)
	List(ctx context.Context) ([]models.UserResponse, error)
}

type userService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) UserService {
	return &userService{users: users}
}

func (s *userService) GetMe(ctx context.Context, id uuid.UUID) (*models.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDB(err, "User not found")
	}
	resp := models.UserResponseFrom(user)
	return &resp, nil
}

func (s *userService) UpdateMe(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.UserResponse, error) {
	if req.Username != nil {
		if *req.Username == "" {
			return nil, apperrors.Validation("Username must not be empty")
		}
		updated, err := s.users.UpdateUsername(ctx, id, *req.Username)
		if err != nil {
			return nil, apperrors.Database(err)
		}
		if !updated {
			return nil, apperrors.NotFound("User not found")
		}
	}
	return s.GetMe(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, models.UserResponseFrom(&users[i]))
	}
	return responses, nil
}
