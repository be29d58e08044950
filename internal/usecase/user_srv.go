package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"concert-venue/internal/auth"
	"concert-venue/internal/data/entity"
	"concert-venue/internal/data/repository"
	"concert-venue/internal/dto/request"
	"concert-venue/internal/dto/response"
	"concert-venue/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	SignIn(ctx context.Context, req *request.SignInRequest, meta auth.ClientMeta) (*response.UserResponse, error)
	SignUp(ctx context.Context, req *request.SignUpRequest, meta auth.ClientMeta) (*response.UserResponse, error)
	GetUser(ctx context.Context, id int64) (*response.UserResponse, error)
	SignOut(ctx context.Context, token string) error
}

type userService struct {
	userRepo      repository.UserRepository
	authenticator auth.Authenticator
	bcryptCost    int
	log           *zap.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	authenticator auth.Authenticator,
	bcryptCost int,
	log *zap.Logger,
) UserService {
	return &userService{
		userRepo:      userRepo,
		authenticator: authenticator,
		bcryptCost:    bcryptCost,
		log:           log.With(zap.String("service", "user")),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) SignIn(ctx context.Context, req *request.SignInRequest, meta auth.ClientMeta) (*response.UserResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Sign in validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	email := normalizeEmail(req.Email)

	// 2. Find user
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 3. Unknown email and wrong password look the same to the client
	if user == nil {
		s.log.Warn("User not found for sign in", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	// 4. Issue token
	token, err := s.authenticator.IssueToken(ctx, user, meta)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User signed in", zap.Int64("user_id", user.ID))

	resp := response.AuthToResponse(user, token.Value, token.ExpiresAt)
	return &resp, nil
}

func (s *userService) SignUp(ctx context.Context, req *request.SignUpRequest, meta auth.ClientMeta) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Sign up validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	email := normalizeEmail(req.Email)

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent sign-up
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// auto sign-in after sign-up; the account stays usable through SignIn
	// when this fails
	token, err := s.authenticator.IssueToken(ctx, user, meta)
	if err != nil {
		s.log.Error("Failed to issue token after sign up",
			zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue token for user %d: %w", user.ID, err)
	}

	s.log.Info("User signed up", zap.Int64("user_id", user.ID))

	resp := response.AuthToResponse(user, token.Value, token.ExpiresAt)
	return &resp, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized
	}

	if err := s.authenticator.RevokeToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: session already ended", ErrUnauthorized)
		}
		return fmt.Errorf("revoke token: %w", err)
	}

	s.log.Info("User signed out")
	return nil
}
