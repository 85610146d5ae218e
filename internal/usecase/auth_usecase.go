package usecase

import (
	"context"
	"errors"
	"fmt"

	"careconnect-server/internal/converter"
	"careconnect-server/internal/delivery/dto"
	"careconnect-server/internal/delivery/http/middleware"
	"careconnect-server/internal/domain/entity"
	"careconnect-server/internal/domain/repository"
	"careconnect-server/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	// Register creates an account with the given role. No patient or
	// provider profile is created here; the profile completion flow fills
	// that in after first login.
	Register(ctx context.Context, req *dto.RegisterRequest, role string) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context) error
	GetCurrentUser(ctx context.Context) (*dto.UserResponse, error)
}

type authUsecase struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	redis      *redis.Client
}

func NewAuthUsecase(log *logrus.Logger, userRepo repository.UserRepository, jwtService *jwt.JWTService, redisClient *redis.Client) AuthUsecase {
	return &authUsecase{
		log:        log,
		userRepo:   userRepo,
		jwtService: jwtService,
		redis:      redisClient,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest, role string) (*dto.UserResponse, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check existing email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Role:      role,
		Email:     req.Email,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	u.log.Infof("User registered: id=%s, role=%s", user.ID, user.Role)
	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, user)
}

// RefreshToken exchanges a valid refresh token for a fresh pair. The old
// refresh token is revoked so each one is single-use.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.redis.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", claims.UserID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := u.redis.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to revoke old refresh token: %+v", err)
	}

	return u.issueTokens(ctx, user)
}

// Logout revokes the access token the request authenticated with.
func (u *authUsecase) Logout(ctx context.Context) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}
	tokenID, ok := middleware.GetTokenIDFromContext(ctx)
	if !ok {
		return errors.New("token not found in context")
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
	if err := u.redis.Del(ctx, accessKey).Err(); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	u.log.Infof("User logged out: id=%s", userID)
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context) (*dto.UserResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// issueTokens generates an access/refresh pair and records both token IDs in
// redis so they can be revoked individually.
func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", user.ID.String(), accessTokenID)
	if err := u.redis.Set(ctx, accessKey, "1", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", user.ID.String(), refreshTokenID)
	if err := u.redis.Set(ctx, refreshKey, "1", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
