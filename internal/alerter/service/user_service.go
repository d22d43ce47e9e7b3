package service

import (
	"context"

	"golang-stock-alert/internal/alerter/dto"
	"golang-stock-alert/internal/alerter/repository"
	"golang-stock-alert/pkg/logger"
)

// UserService exposes user lookup and the user's notification history.
type UserService interface {
	GetUser(ctx context.Context, userID uint) (*dto.UserResponse, error)
	GetUserNotifications(ctx context.Context, userID uint) ([]*dto.NotificationResponse, error)
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, notificationRepo repository.NotificationRepository, log *logger.Logger) UserService {
	return &userService{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		logger:           log,
	}
}

type userService struct {
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	logger           *logger.Logger
}

func (s *userService) GetUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// GetUserNotifications lists the user's delivered notifications, newest
// first. The user must exist; an empty history is not an error.
func (s *userService) GetUserNotifications(ctx context.Context, userID uint) ([]*dto.NotificationResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, dto.NewNotificationResponse(&notifications[i]))
	}
	return responses, nil
}
