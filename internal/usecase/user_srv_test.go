package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"concert-venue/internal/auth"
	"concert-venue/internal/data/entity"
	"concert-venue/internal/data/fixture"
	"concert-venue/internal/data/repository/memory"
	"concert-venue/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type UserServiceSuite struct {
	suite.Suite
	ctx       context.Context
	svc       UserService
	validator auth.TokenValidator
}

func (s *UserServiceSuite) SetupTest() {
	s.ctx = context.Background()
	repo := memory.NewRepository(zap.NewNop())
	s.Require().NoError(fixture.Load(s.ctx, repo, 4))

	sessions := auth.NewSessionManager(repo.Session, time.Hour, nil, 0, zap.NewNop())
	s.validator = sessions
	s.svc = NewUserService(repo.User, sessions, 4, zap.NewNop())
}

func (s *UserServiceSuite) TestSignIn() {
	user, err := s.svc.SignIn(s.ctx, &request.SignInRequest{Email: "test@test.test", Password: "test"}, auth.ClientMeta{})
	s.Require().NoError(err)
	s.Equal(int64(1), user.ID)
	s.Equal("test@test.test", user.Email)
	s.NotEmpty(user.Token)
	s.NotNil(user.ExpiresAt)

	ok, err := s.validator.ValidateToken(s.ctx, user.Token)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *UserServiceSuite) TestSignInEmailIsCaseInsensitive() {
	user, err := s.svc.SignIn(s.ctx, &request.SignInRequest{Email: " TEST@test.test ", Password: "test"}, auth.ClientMeta{})
	s.Require().NoError(err)
	s.Equal(int64(1), user.ID)
}

func (s *UserServiceSuite) TestSignInWrongCredentials() {
	_, err := s.svc.SignIn(s.ctx, &request.SignInRequest{Email: "test@test.test", Password: "nope"}, auth.ClientMeta{})
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.svc.SignIn(s.ctx, &request.SignInRequest{Email: "ghost@test.test", Password: "test"}, auth.ClientMeta{})
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.svc.SignIn(s.ctx, &request.SignInRequest{Email: "not-an-email", Password: "test"}, auth.ClientMeta{})
	s.ErrorIs(err, ErrValidation)
}

func (s *UserServiceSuite) TestSignUpThenSignIn() {
	created, err := s.svc.SignUp(s.ctx, &request.SignUpRequest{Email: "New@Venue.test", Password: "secret"}, auth.ClientMeta{})
	s.Require().NoError(err)
	s.Equal("new@venue.test", created.Email)
	s.NotEmpty(created.Token)
	s.Greater(created.ID, int64(2))

	signedIn, err := s.svc.SignIn(s.ctx, &request.SignInRequest{Email: "new@venue.test", Password: "secret"}, auth.ClientMeta{})
	s.Require().NoError(err)
	s.Equal(created.ID, signedIn.ID)

	_, err = s.svc.SignUp(s.ctx, &request.SignUpRequest{Email: "new@venue.test", Password: "other"}, auth.ClientMeta{})
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *UserServiceSuite) TestGetUser() {
	user, err := s.svc.GetUser(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("test@test.test", user.Email)
	s.Empty(user.Token)

	_, err = s.svc.GetUser(s.ctx, 11111)
	s.ErrorIs(err, ErrNotFound)
}

func (s *UserServiceSuite) TestSignOut() {
	user, err := s.svc.SignIn(s.ctx, &request.SignInRequest{Email: "test@test.test", Password: "test"}, auth.ClientMeta{})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.SignOut(s.ctx, user.Token))

	ok, err := s.validator.ValidateToken(s.ctx, user.Token)
	s.Require().NoError(err)
	s.False(ok)

	s.ErrorIs(s.svc.SignOut(s.ctx, user.Token), ErrUnauthorized)
	s.ErrorIs(s.svc.SignOut(s.ctx, ""), ErrUnauthorized)
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}

type brokenIssuer struct{ auth.Authenticator }

func (brokenIssuer) IssueToken(context.Context, *entity.User, auth.ClientMeta) (auth.Token, error) {
	return auth.Token{}, errors.New("session store unavailable")
}

func TestSignUpFailsWhenTokenCannotBeIssued(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository(zap.NewNop())
	svc := NewUserService(repo.User, brokenIssuer{}, 4, zap.NewNop())

	created, err := svc.SignUp(ctx, &request.SignUpRequest{Email: "new@venue.test", Password: "secret"}, auth.ClientMeta{})
	require.Error(t, err)
	assert.Nil(t, created)
	assert.NotErrorIs(t, err, ErrEmailTaken)

	// the account exists and can sign in once tokens work again
	user, err := repo.User.FindByEmail(ctx, "new@venue.test")
	require.NoError(t, err)
	assert.NotNil(t, user)
}
