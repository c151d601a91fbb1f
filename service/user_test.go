package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"booking-platform/apperror"
	"booking-platform/model"
)

func newUserFixture() (*UserService, *fakeUserStore) {
	users := newFakeUserStore()
	svc := NewUserService(users, UserServiceConfig{
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
		AdminSecret: "let-me-in",
		BcryptCost:  bcrypt.MinCost,
	})
	return svc, users
}

func TestRegisterHashesPasswordAndNormalizesEmail(t *testing.T) {
	svc, _ := newUserFixture()

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:     "  Gopher@Example.COM ",
		Password:  "correct horse",
		FirstName: "Go",
		LastName:  "Pher",
		Phone:     "123456",
	})
	require.NoError(t, err)

	assert.Equal(t, "gopher@example.com", user.Email)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEqual(t, "correct horse", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("correct horse")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserFixture()
	in := RegisterInput{Email: "gopher@example.com", Password: "correct horse"}

	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), in)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestRegisterAdminRequiresSecret(t *testing.T) {
	svc, _ := newUserFixture()
	in := RegisterInput{Email: "admin@example.com", Password: "correct horse"}

	_, err := svc.RegisterAdmin(context.Background(), in, "wrong")
	assert.True(t, apperror.IsKind(err, apperror.KindAuthorization))

	user, err := svc.RegisterAdmin(context.Background(), in, "let-me-in")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)
}

func TestRegisterAdminDisabledWithoutConfiguredSecret(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users, UserServiceConfig{JWTSecret: "s", BcryptCost: bcrypt.MinCost})

	_, err := svc.RegisterAdmin(context.Background(), RegisterInput{Email: "a@b.c", Password: "p"}, "")
	assert.True(t, apperror.IsKind(err, apperror.KindAuthorization))
}

func TestLoginIssuesToken(t *testing.T) {
	svc, _ := newUserFixture()

	registered, err := svc.Register(context.Background(), RegisterInput{
		Email:    "gopher@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	signed, user, err := svc.Login(context.Background(), "Gopher@Example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	token, err := jwt.Parse(signed, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, registered.ID.Hex(), claims["id"])
	assert.Equal(t, model.RoleUser, claims["role"])
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newUserFixture()

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "gopher@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, _, unknownErr := svc.Login(context.Background(), "nobody@example.com", "whatever")
	_, _, wrongErr := svc.Login(context.Background(), "gopher@example.com", "wrong password")

	assert.True(t, apperror.IsKind(unknownErr, apperror.KindAuthentication))
	assert.True(t, apperror.IsKind(wrongErr, apperror.KindAuthentication))
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	svc, users := newUserFixture()

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:    "gopher@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	newPassword := "battery staple"
	_, err = svc.Update(context.Background(), user.ID, model.UserPatch{Password: &newPassword})
	require.NoError(t, err)

	stored, err := users.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, newPassword, stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(newPassword)))
}
