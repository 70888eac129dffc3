package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/atulv2861/seven-healer-backend/internal/model"
	"github.com/atulv2861/seven-healer-backend/internal/service"
)

var testSuperuser = service.SuperuserConfig{
	Email:     "root@sevenhealer.com",
	Password:  "super-secret",
	FirstName: "Site",
	LastName:  "Admin",
}

func newAuthService(t *testing.T, repo *fakeUserRepo) service.AuthService {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	return service.NewAuthService(repo, testSuperuser, 30)
}

func TestAuthService_Signup_StoresInactiveHashedUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(t, repo)

	user, err := svc.Signup(context.Background(), service.SignupDTO{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "Jane.Doe@Example.com",
		Password:  "password123",
		Phone:     "+1 555 123 4567",
	})
	require.NoError(t, err)

	require.Equal(t, "jane.doe@example.com", user.Email)
	require.Equal(t, model.RoleUser, user.Role)
	require.False(t, user.IsActive)
	require.NotEqual(t, "password123", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(t, repo)

	dto := service.SignupDTO{
		FirstName: "Jane", LastName: "Doe",
		Email: "jane@example.com", Password: "password123", Phone: "+1 555 123 4567",
	}
	_, err := svc.Signup(context.Background(), dto)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), dto)
	require.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestAuthService_Login_SuperuserAlwaysSucceeds(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(t, repo)

	token, identity, err := svc.Login(context.Background(), "Root@SevenHealer.com", "super-secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, identity.Superuser)
	require.True(t, identity.IsAdmin())
	require.Equal(t, testSuperuser.Email, identity.Email())
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(t, repo)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(t, repo)

	seedUser(t, repo, "admin@example.com", "correct-pass", model.RoleAdmin, true)

	_, _, err := svc.Login(context.Background(), "admin@example.com", "wrong-pass")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_Login_NonAdminRejected(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(t, repo)

	seedUser(t, repo, "user@example.com", "password123", model.RoleUser, true)

	_, _, err := svc.Login(context.Background(), "user@example.com", "password123")
	require.ErrorIs(t, err, service.ErrAdminOnly)
}

func TestAuthService_Login_InactiveAdminRejected(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(t, repo)

	seedUser(t, repo, "admin@example.com", "password123", model.RoleAdmin, false)

	_, _, err := svc.Login(context.Background(), "admin@example.com", "password123")
	require.ErrorIs(t, err, service.ErrAdminOnly)
}

func TestAuthService_Login_ActiveAdminSucceeds(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(t, repo)

	seedUser(t, repo, "admin@example.com", "password123", model.RoleAdmin, true)

	token, identity, err := svc.Login(context.Background(), "admin@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.False(t, identity.Superuser)
	require.True(t, identity.IsAdmin())
}

func TestAuthService_ResolveIdentity_RoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(t, repo)

	seedUser(t, repo, "admin@example.com", "password123", model.RoleAdmin, true)

	token, _, err := svc.Login(context.Background(), "admin@example.com", "password123")
	require.NoError(t, err)

	identity, err := svc.ResolveIdentity(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", identity.Email())
}

func TestAuthService_ResolveIdentity_Superuser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(t, repo)

	token, _, err := svc.Login(context.Background(), testSuperuser.Email, testSuperuser.Password)
	require.NoError(t, err)

	identity, err := svc.ResolveIdentity(context.Background(), token)
	require.NoError(t, err)
	require.True(t, identity.Superuser)
}

func TestAuthService_ResolveIdentity_Garbage(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(t, repo)

	_, err := svc.ResolveIdentity(context.Background(), "not-a-token")
	require.ErrorIs(t, err, service.ErrTokenInvalid)
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password, role string, active bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), &model.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     active,
	})
	require.NoError(t, err)
}
