package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"skyops/crewdeck/internal/config"
	"skyops/crewdeck/internal/db/repositories"
	"skyops/crewdeck/internal/models/dtos"
	"skyops/crewdeck/internal/models/entities"
	gormModels "skyops/crewdeck/internal/models/gorm"
)

var testSecret = []byte("test-secret")

func setupAuthService(t *testing.T) *AuthService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&gormModels.FlightCrew{}))

	repo := repositories.NewCrewRepository(db, config.DefaultRoleDesignations())
	member := &entities.CrewMember{
		SAP:             10000001,
		FirstName:       "Asha",
		LastName:        "Verma",
		Designation:     "COMMANDER",
		Mobile:          9876543210,
		ATPLHolder:      true,
		LicenceNo:       5501,
		MedicalValidity: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		BaseOps:         "DEL",
		Availability:    true,
		Login:           "averma",
		Password:        "hunter2",
	}
	require.NoError(t, repo.Insert(context.Background(), member))

	return NewAuthService(repo, testSecret)
}

func TestLogin_IssuesTokenWithCrewClaims(t *testing.T) {
	svc := setupAuthService(t)

	resp, err := svc.Login(context.Background(), &dtos.LoginRequest{Login: "averma", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, int64(10000001), resp.SAP)
	require.NotEmpty(t, resp.Token)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(10000001), claims["sap"])
	assert.Equal(t, "COMMANDER", claims["designation"])
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	svc := setupAuthService(t)

	cases := []dtos.LoginRequest{
		{Login: "averma", Password: "wrong"},
		{Login: "nobody", Password: "hunter2"},
		{Login: "", Password: ""},
	}
	for _, req := range cases {
		_, err := svc.Login(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}
