package service

import (
	"context"
	"errors"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(ctx context.Context, user *domain.User) error {
	if user.StudentID == "" || user.Name == "" {
		return errors.New("student id and name are required")
	}
	if existing, err := s.userRepo.GetByStudentID(ctx, user.StudentID); err == nil && existing != nil {
		return errors.New("student id is already registered")
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return s.userRepo.Create(ctx, user)
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) GetUserByStudentID(ctx context.Context, studentID string) (*domain.User, error) {
	return s.userRepo.GetByStudentID(ctx, studentID)
}

func (s *userService) ListUsers(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error) {
	return s.userRepo.List(ctx, page, pageSize)
}
