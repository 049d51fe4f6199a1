package service

import (
	"testing"

	"github.com/adislens/medpgprep/config"
	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/model"
	"github.com/adislens/medpgprep/internal/repository"
	"github.com/adislens/medpgprep/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "unit-test-secret"

func newAuthServiceForTest(t *testing.T) (AuthService, *forumFixture) {
	t.Helper()
	f := newForumFixture(t)
	cfg := &config.Config{JWTSecret: testJWTSecret}
	return NewAuthService(repository.NewUserRepository(f.db), f.profileRepo, cfg), f
}

func TestRegisterCreatesUserProfileAndToken(t *testing.T) {
	auth, f := newAuthServiceForTest(t)

	resp, err := auth.Register(dto.RegisterRequestDTO{
		Email:       "asha@example.com",
		Password:    "correct horse",
		DisplayName: "Asha",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", resp.User.Email)
	assert.Equal(t, "Asha", resp.User.DisplayName)

	userID, err := token.Parse(resp.Token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)

	assert.EqualValues(t, 1, f.count(t, &model.Profile{}, "id = ?", resp.User.ID))

	// The stored hash never equals the raw password.
	var user model.User
	require.NoError(t, f.db.First(&user, resp.User.ID).Error)
	assert.NotEqual(t, "correct horse", user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _ := newAuthServiceForTest(t)

	req := dto.RegisterRequestDTO{Email: "asha@example.com", Password: "correct horse", DisplayName: "Asha"}
	_, err := auth.Register(req)
	require.NoError(t, err)

	_, err = auth.Register(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	auth, _ := newAuthServiceForTest(t)
	_, err := auth.Register(dto.RegisterRequestDTO{Email: "asha@example.com", Password: "correct horse", DisplayName: "Asha"})
	require.NoError(t, err)

	resp, err := auth.Login(dto.LoginRequestDTO{Email: "asha@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "Asha", resp.User.DisplayName)
	assert.NotEmpty(t, resp.Token)

	_, err = auth.Login(dto.LoginRequestDTO{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown accounts fail the same way as bad passwords.
	_, err = auth.Login(dto.LoginRequestDTO{Email: "nobody@example.com", Password: "correct horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUser(t *testing.T) {
	auth, _ := newAuthServiceForTest(t)
	resp, err := auth.Register(dto.RegisterRequestDTO{Email: "asha@example.com", Password: "correct horse", DisplayName: "Asha"})
	require.NoError(t, err)

	user, err := auth.CurrentUser(resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "Asha", user.DisplayName)

	_, err = auth.CurrentUser(9999)
	assert.Error(t, err)
}
