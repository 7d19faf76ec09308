package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/findme-ke/findme-api/internal/dto"
	apperrors "github.com/findme-ke/findme-api/internal/errors"
	"github.com/findme-ke/findme-api/internal/model"
	"github.com/findme-ke/findme-api/internal/repository"
	ctxutil "github.com/findme-ke/findme-api/pkg/context"
	"github.com/findme-ke/findme-api/pkg/database"
	"github.com/findme-ke/findme-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repoUser   *repository.UserRepository
	jwtService *JWTService
}

func NewUserService(repo *repository.UserRepository, jwtService *JWTService) *UserService {
	return &UserService{
		repoUser:   repo,
		jwtService: jwtService,
	}
}

func (s *UserService) hashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedPassword), nil
}

func (s *UserService) checkPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// Register creates a user with a hashed password and returns a fresh token.
// The email unique index is the duplicate guard: a race between two
// registrations resolves at the database, not in application code.
func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "Register")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "service")

	email := strings.TrimSpace(req.Email)

	logger.InfoWithContext(ctx, "Registering new user").
		String("email", email).
		Log()

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to hash password").
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	user := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := s.repoUser.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailExists
		}
		logger.ErrorWithContext(ctx, "Failed to create user").
			String("email", email).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to issue token").
			Int("user_id", int(user.ID)).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "User registered").
		Int("user_id", int(user.ID)).
		String("email", user.Email).
		Log()

	return &dto.AuthResponse{
		Token: token,
		User:  newUserResponse(user),
	}, nil
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password both surface as the same invalid-credentials error.
func (s *UserService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "Login")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "service")

	user, err := s.repoUser.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		logger.ErrorWithContext(ctx, "Failed to look up user").
			String("email", email).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if !s.checkPassword(user.PasswordHash, password) {
		logger.WarnWithContext(ctx, "Password mismatch").
			Int("user_id", int(user.ID)).
			Log()
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to issue token").
			Int("user_id", int(user.ID)).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "User logged in").
		Int("user_id", int(user.ID)).
		Log()

	return &dto.AuthResponse{
		Token: token,
		User:  newUserResponse(user),
	}, nil
}

// GetByID returns the caller's own user record
func (s *UserService) GetByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "GetByID")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "service")

	user, err := s.repoUser.GetByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.ErrorWithContext(ctx, "Failed to get user").
			Int("user_id", int(id)).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := newUserResponse(user)
	return &response, nil
}

func newUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
