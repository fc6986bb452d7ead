package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
)

func registerInput(role string) RegisterInput {
	return RegisterInput{
		Surname:   "Doe",
		Othername: "Jane",
		Email:     "Jane.Doe@Example.com",
		Phone:     "08012345678",
		Password:  "secret1",
		Role:      role,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, "test-secret", time.Hour)

	res, err := svc.Register(context.Background(), registerInput(models.RoleMentor))
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "jane.doe@example.com", res.User.Email)
	require.NotNil(t, res.User.Availability)
	assert.True(t, *res.User.Availability)

	// token carries the user id
	token, err := jwt.Parse(res.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, res.User.ID.Hex(), claims["id"])

	login, err := svc.Login(context.Background(), "jane.doe@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)

	_, err = svc.Login(context.Background(), "jane.doe@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Incorrect Password", apperr.MessageOf(err))

	_, err = svc.Login(context.Background(), "nobody@example.com", "secret1")
	require.Error(t, err)
	assert.Equal(t, "Incorrect Email", apperr.MessageOf(err))
}

func TestRegisterValidation(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, "test-secret", time.Hour)

	in := registerInput(models.RoleStudent)
	in.Password = "short"
	_, err := svc.Register(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, 400, apperr.StatusOf(err))

	in = registerInput("admin") // not self-assignable
	_, err = svc.Register(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, "Invalid role specified", apperr.MessageOf(err))

	_, err = svc.Register(context.Background(), registerInput(models.RoleStudent))
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), registerInput(models.RoleStudent))
	require.Error(t, err)
	assert.Equal(t, "User already exists", apperr.MessageOf(err))
}

func TestUpdateProfilePartial(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, "test-secret", time.Hour)

	res, err := svc.Register(context.Background(), registerInput(models.RoleStudent))
	require.NoError(t, err)

	u, err := svc.UpdateProfile(context.Background(), res.User.ID.Hex(), ProfileUpdate{Bio: "hi there"})
	require.NoError(t, err)
	assert.Equal(t, "hi there", u.Bio)
	assert.Equal(t, "Doe", u.Surname)
}
