package users

import (
	"context"
	"fmt"
	"time"

	"learnhub-service/internal/app/config"
	"learnhub-service/internal/app/contracts"
	"learnhub-service/internal/app/models"
	"learnhub-service/internal/pkg/constvars"
	"learnhub-service/internal/pkg/dto/requests"
	"learnhub-service/internal/pkg/dto/responses"
	"learnhub-service/internal/pkg/exceptions"
	"learnhub-service/internal/pkg/utils"
)

type userUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewUserUsecase(
	userMongoRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository:  userMongoRepository,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (uc *userUsecase) SignupUser(ctx context.Context, request *requests.Signup) (*responses.UserCreated, error) {
	// Reject duplicate emails before hashing anything
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	userModel := &models.User{
		Name:       request.Name,
		Email:      request.Email,
		Password:   hashedPassword,
		Role:       models.RoleStudent,
		LastActive: time.Now(),
	}
	_, err = uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		return nil, err
	}

	return &responses.UserCreated{Email: request.Email}, nil
}

func (uc *userUsecase) SigninUser(ctx context.Context, request *requests.Signin) (*responses.Login, error) {
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, existingUser.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionID := utils.GenerateSessionID()
	sessionModel := models.Session{
		ID:     sessionID,
		UserID: existingUser.ID,
		Email:  existingUser.Email,
		Role:   existingUser.Role,
	}
	sessionExpiry := time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	err = uc.RedisRepository.Set(ctx, fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID), sessionModel, sessionExpiry)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(sessionID, uc.InternalConfig.JWT.Secret, time.Duration(uc.InternalConfig.JWT.ExpTimeInHour)*time.Hour)
	if err != nil {
		return nil, err
	}

	existingUser.LastActive = time.Now()
	if err := uc.UserRepository.UpdateUser(ctx, existingUser); err != nil {
		return nil, err
	}

	return &responses.Login{Token: token}, nil
}

func (uc *userUsecase) SignoutUser(ctx context.Context, sessionID string) error {
	return uc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID))
}

func (uc *userUsecase) GetUserProfileByID(ctx context.Context, userID string) (*responses.UserProfile, error) {
	existingUser, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existingUser == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return buildUserProfile(existingUser), nil
}

func (uc *userUsecase) UpdateUserProfileByID(ctx context.Context, userID string, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	existingUser, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existingUser == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if request.Name != "" {
		existingUser.Name = request.Name
	}
	if request.Bio != "" {
		existingUser.Bio = request.Bio
	}

	err = uc.UserRepository.UpdateUser(ctx, existingUser)
	if err != nil {
		return nil, err
	}
	return buildUserProfile(existingUser), nil
}

func (uc *userUsecase) ChangePassword(ctx context.Context, userID string, request *requests.ChangePassword) error {
	existingUser, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if existingUser == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	existingUser.Password = hashedPassword
	return uc.UserRepository.UpdateUser(ctx, existingUser)
}

func (uc *userUsecase) CreateResetPasswordToken(ctx context.Context, email string) (*responses.ResetToken, error) {
	existingUser, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existingUser == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	// Only the digest is persisted; the raw token goes back to the caller.
	rawToken, tokenDigest, err := utils.GenerateResetToken()
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}
	expiry := time.Now().Add(time.Duration(uc.InternalConfig.App.ForgotPasswordTokenExpTimeInMinute) * time.Minute)
	existingUser.ResetPasswordToken = tokenDigest
	existingUser.ResetPasswordTokenExpiry = &expiry

	err = uc.UserRepository.UpdateUser(ctx, existingUser)
	if err != nil {
		return nil, err
	}
	return &responses.ResetToken{ResetPasswordToken: rawToken}, nil
}

func (uc *userUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	tokenDigest := utils.HashResetToken(request.ResetPasswordToken)
	existingUser, err := uc.UserRepository.FindByResetToken(ctx, tokenDigest)
	if err != nil {
		return err
	}
	if existingUser == nil {
		return exceptions.ErrResetPasswordTokenInvalid(nil)
	}
	if existingUser.ResetPasswordTokenExpiry == nil || time.Now().After(*existingUser.ResetPasswordTokenExpiry) {
		return exceptions.ErrResetPasswordTokenExpired(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	existingUser.Password = hashedPassword
	existingUser.ResetPasswordToken = ""
	existingUser.ResetPasswordTokenExpiry = nil
	return uc.UserRepository.UpdateUser(ctx, existingUser)
}

func (uc *userUsecase) DeleteAccount(ctx context.Context, userID, sessionID string) error {
	existingUser, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if existingUser == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	if err := uc.UserRepository.DeleteByID(ctx, userID); err != nil {
		return err
	}
	// The session is gone with the account
	return uc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID))
}

func buildUserProfile(user *models.User) *responses.UserProfile {
	return &responses.UserProfile{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
		Avatar: user.Avatar,
		Bio:    user.Bio,
	}
}
