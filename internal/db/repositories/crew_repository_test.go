package repositories

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"skyops/crewdeck/internal/config"
	"skyops/crewdeck/internal/constants"
	"skyops/crewdeck/internal/models/entities"
	gormModels "skyops/crewdeck/internal/models/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "open test database")

	err = db.AutoMigrate(
		&gormModels.FlightCrew{},
		&gormModels.Aircraft{},
		&gormModels.Flight{},
	)
	require.NoError(t, err, "migrate")
	return db
}

func seedCrew(t *testing.T, db *gorm.DB, sap int64, designation string, available bool) {
	t.Helper()
	row := gormModels.FlightCrew{
		SAP:             sap,
		FirstName:       "Asha",
		LastName:        "Verma",
		Designation:     designation,
		Mobile:          9876543210,
		ATPLHolder:      true,
		LicenceNo:       44021,
		MedicalValidity: time.Now().AddDate(1, 0, 0),
		BaseOps:         "DEL",
		Availability:    available,
		Login:           strconv.FormatInt(sap, 10),
		Password:        "secret",
	}
	require.NoError(t, db.Create(&row).Error)
}

func TestCrewRepository_ListAvailable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCrewRepository(db, config.DefaultRoleDesignations())

	seedCrew(t, db, 80050301, "COMMANDER", true)
	seedCrew(t, db, 80050302, "LTC", true)
	seedCrew(t, db, 80050303, "TRI", false) // on leave
	seedCrew(t, db, 80050401, "FO", true)
	seedCrew(t, db, 80050402, "JFO", true)
	seedCrew(t, db, 80050403, "SFO", false) // on leave

	p1, err := repo.ListAvailable(context.Background(), constants.RoleP1)
	require.NoError(t, err)
	require.Len(t, p1, 2)
	assert.Equal(t, int64(80050301), p1[0].SAP)
	assert.Equal(t, int64(80050302), p1[1].SAP)

	p2, err := repo.ListAvailable(context.Background(), constants.RoleP2)
	require.NoError(t, err)
	require.Len(t, p2, 2)
	assert.Equal(t, int64(80050401), p2[0].SAP)
	assert.Equal(t, int64(80050402), p2[1].SAP)
}

func TestCrewRepository_ListAvailable_UnknownRole(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCrewRepository(db, config.DefaultRoleDesignations())

	_, err := repo.ListAvailable(context.Background(), constants.CrewRole("P3"))
	assert.Error(t, err)
}

func TestCrewRepository_UpdateAvailability(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCrewRepository(db, config.DefaultRoleDesignations())

	seedCrew(t, db, 80050301, "COMMANDER", true)

	require.NoError(t, repo.UpdateAvailability(context.Background(), 80050301, false))

	p1, err := repo.ListAvailable(context.Background(), constants.RoleP1)
	require.NoError(t, err)
	assert.Empty(t, p1, "crew on leave must not be offered to the builder")

	assert.ErrorIs(t, repo.UpdateAvailability(context.Background(), 99999999, false), ErrNotFound)
}

func TestCrewRepository_InsertFindDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCrewRepository(db, config.DefaultRoleDesignations())

	member := &entities.CrewMember{
		SAP:             80050305,
		FirstName:       "Ravi",
		LastName:        "Iyer",
		Designation:     "COMMANDER",
		Mobile:          9812345678,
		ATPLHolder:      true,
		LicenceNo:       51220,
		MedicalValidity: time.Now().AddDate(0, 6, 0),
		BaseOps:         "BOM",
		Availability:    true,
		Login:           "80050305",
		Password:        "secret",
	}
	require.NoError(t, member.Validate())
	require.NoError(t, repo.Insert(context.Background(), member))

	found, err := repo.FindBySAP(context.Background(), 80050305)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", found.FirstName)
	assert.Equal(t, "COMMANDER", found.Designation)

	byLogin, err := repo.FindByLogin(context.Background(), "80050305")
	require.NoError(t, err)
	assert.Equal(t, int64(80050305), byLogin.SAP)

	require.NoError(t, repo.Delete(context.Background(), 80050305))
	_, err = repo.FindBySAP(context.Background(), 80050305)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCrewRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCrewRepository(db, config.DefaultRoleDesignations())

	seedCrew(t, db, 80050301, "FO", true)

	updated := &entities.CrewMember{
		SAP:             80050301,
		FirstName:       "Asha",
		LastName:        "Verma",
		Designation:     "COMMANDER", // promoted
		Mobile:          9876500000,
		ATPLHolder:      false,
		LicenceNo:       44021,
		MedicalValidity: time.Now().AddDate(1, 0, 0),
		BaseOps:         "BLR",
		Availability:    true,
		Login:           "80050301",
		Password:        "rotated",
	}
	require.NoError(t, repo.Update(context.Background(), updated))

	found, err := repo.FindBySAP(context.Background(), 80050301)
	require.NoError(t, err)
	assert.Equal(t, "COMMANDER", found.Designation)
	assert.Equal(t, int64(9876500000), found.Mobile)
	assert.False(t, found.ATPLHolder, "zero-valued fields must be written too")
	assert.Equal(t, "BLR", found.BaseOps)
	assert.Equal(t, "rotated", found.Password)

	updated.SAP = 99999999
	assert.ErrorIs(t, repo.Update(context.Background(), updated), ErrNotFound)
}

func TestFleetRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFleetRepository(db)

	row := gormModels.Aircraft{MSN: 9001, Type: "A320", Registration: "EXA", Availability: true, Engine: "CFM56", EngineHours: 4100}
	require.NoError(t, db.Create(&row).Error)

	updated := &entities.Aircraft{
		MSN:          9001,
		Type:         "A320",
		Registration: "EXD",
		Availability: false, // grounded for the engine swap
		Engine:       "LEAP",
		EngineHours:  0,
	}
	require.NoError(t, repo.Update(context.Background(), updated))

	found, err := repo.FindByMSN(context.Background(), 9001)
	require.NoError(t, err)
	assert.Equal(t, "EXD", found.Registration)
	assert.Equal(t, "LEAP", found.Engine)
	assert.False(t, found.Availability)
	assert.Equal(t, 0, found.EngineHours)

	updated.MSN = 9999
	assert.ErrorIs(t, repo.Update(context.Background(), updated), ErrNotFound)
}

func TestFleetRepository_ListAvailable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFleetRepository(db)

	for _, row := range []gormModels.Aircraft{
		{MSN: 9001, Type: "A320", Registration: "EXA", Availability: true, Engine: "CFM56", EngineHours: 4100},
		{MSN: 9002, Type: "A320", Registration: "EXB", Availability: false, Engine: "CFM56", EngineHours: 8900},
		{MSN: 9003, Type: "B737", Registration: "EXC", Availability: true, Engine: "LEAP", EngineHours: 120},
	} {
		require.NoError(t, db.Create(&row).Error)
	}

	a320s, err := repo.ListAvailable(context.Background(), "A320")
	require.NoError(t, err)
	require.Len(t, a320s, 1)
	assert.Equal(t, int64(9001), a320s[0].MSN)

	none, err := repo.ListAvailable(context.Background(), "A350")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFlightRepository_ListAllOrdered(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFlightRepository(db)

	for _, f := range []entities.Flight{
		{Number: 202, Departure: "BOM", Arrival: "DEL", AircraftType: "A320", DepTime: "09:00", ArrTime: "11:10", Duration: "02:10"},
		{Number: 101, Departure: "DEL", Arrival: "BOM", AircraftType: "A320", DepTime: "06:00", ArrTime: "08:15", Duration: "02:15"},
	} {
		flight := f
		require.NoError(t, repo.Insert(context.Background(), &flight))
	}

	flights, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, flights, 2)
	assert.Equal(t, 101, flights[0].Number)
	assert.Equal(t, 202, flights[1].Number)
}
