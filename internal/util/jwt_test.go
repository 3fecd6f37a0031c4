package util

import (
	"testing"
	"time"

	"edupath_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret"

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{Name: "Ada", Email: "ada@example.com", Role: model.Teacher}
	user.ID = 42

	token, err := GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.Teacher, claims.Role)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestParseJWTRejectsExpiredToken(t *testing.T) {
	user := &model.User{Email: "ada@example.com"}
	user.ID = 1

	token, err := GenerateJWT(user, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.Error(t, err)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	user := &model.User{Email: "ada@example.com"}
	user.ID = 1

	token, err := GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "completely-different-secret-123456")
	assert.Error(t, err)
}
