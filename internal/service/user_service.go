package service

import (
	"context"

	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/repository"
)

type UserService interface {
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	GetProfile(ctx context.Context, userID int) (*model.Profile, error)
	UpdateProfile(ctx context.Context, userID int, params model.UpdateProfileParams) (*model.Profile, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

func (s *UserServiceImpl) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID int) (*model.Profile, error) {
	return s.userRepo.FindProfileByUserID(ctx, userID)
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID int, params model.UpdateProfileParams) (*model.Profile, error) {
	return s.userRepo.UpdateProfile(ctx, userID, params)
}
