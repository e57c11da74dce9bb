package services

import (
	"testing"

	"mccare_backend/internal/config"
	"mccare_backend/internal/models"
	"mccare_backend/internal/services/dto"
	"mccare_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func init() {
	// Token signing reads the process-wide config.
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func newAuthFixture() (AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	return NewAuthService(users), users
}

func TestRegisterIssuesToken(t *testing.T) {
	service, users := newAuthFixture()

	resp, err := service.Register(&dto.RegisterRequest{
		Email:     "grace@mccare.example",
		Password:  "str0ngpassword",
		FirstName: "Grace",
		LastName:  "Okafor",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, models.UserRoleNurse, resp.User.Role, "role defaults to Nurse")

	stored, err := users.FindByEmail("grace@mccare.example")
	assert.NoError(t, err)
	assert.NotEqual(t, "str0ngpassword", stored.PasswordHash, "password is never stored in clear")
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	service, _ := newAuthFixture()

	_, err := service.Register(&dto.RegisterRequest{
		Email:    "grace@mccare.example",
		Password: "short",
	})
	assert.Error(t, err)

	var appErr *apperrors.AppError
	assert.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := newAuthFixture()

	req := &dto.RegisterRequest{Email: "dup@mccare.example", Password: "str0ngpassword"}
	_, err := service.Register(req)
	assert.NoError(t, err)

	_, err = service.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginVerifiesPassword(t *testing.T) {
	service, _ := newAuthFixture()

	_, err := service.Register(&dto.RegisterRequest{
		Email:    "login@mccare.example",
		Password: "str0ngpassword",
		Role:     string(models.UserRoleRecruiter),
	})
	assert.NoError(t, err)

	resp, err := service.Login(&dto.LoginRequest{Email: "login@mccare.example", Password: "str0ngpassword"})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, models.UserRoleRecruiter, resp.User.Role)

	_, err = service.Login(&dto.LoginRequest{Email: "login@mccare.example", Password: "wrongpassword"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Unknown accounts fail the same way as bad passwords.
	_, err = service.Login(&dto.LoginRequest{Email: "nobody@mccare.example", Password: "str0ngpassword"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
