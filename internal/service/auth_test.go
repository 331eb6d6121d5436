package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fahrielsara/portfolio-backend/internal/models"
	"github.com/fahrielsara/portfolio-backend/internal/service"
	"github.com/fahrielsara/portfolio-backend/internal/testhelpers"
)

func TestAuthService(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := service.NewAuthService(db, "test-secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	require.NoError(t, err)
	owner := models.User{
		ID:           uuid.New(),
		Name:         "Owner",
		Email:        "owner@example.com",
		PasswordHash: string(hashed),
	}
	require.NoError(t, db.Create(&owner).Error)

	t.Run("login issues a verifiable token", func(t *testing.T) {
		token, err := svc.Login("owner@example.com", "correct-horse")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, claims.UserID)
		assert.Equal(t, "owner@example.com", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("owner@example.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login("nobody@example.com", "correct-horse")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		other := service.NewAuthService(db, "different-secret")
		token, err := other.Login("owner@example.com", "correct-horse")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})
}
