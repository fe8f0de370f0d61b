package contracts

import (
	"context"

	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/dto/requests"
	"learnhub-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	SignupUser(ctx context.Context, request *requests.Signup) (*responses.UserCreated, error)
	SigninUser(ctx context.Context, request *requests.Signin) (*responses.Login, error)
	SignoutUser(ctx context.Context, sessionID string) error
	GetUserProfileByID(ctx context.Context, userID string) (*responses.UserProfile, error)
	UpdateUserProfileByID(ctx context.Context, userID string, request *requests.UpdateProfile) (*responses.UserProfile, error)
	ChangePassword(ctx context.Context, userID string, request *requests.ChangePassword) error
	CreateResetPasswordToken(ctx context.Context, email string) (*responses.ResetToken, error)
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
	DeleteAccount(ctx context.Context, userID, sessionID string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByResetToken(ctx context.Context, tokenDigest string) (*models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
	DeleteByID(ctx context.Context, userID string) error
}
