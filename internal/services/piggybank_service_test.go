package services

import (
	"testing"

	"github.com/centsible/centsible/internal/database"
	"github.com/centsible/centsible/internal/repository"
	"github.com/stretchr/testify/assert"
)

func setupPiggybankTestDB(t *testing.T) *PiggybankService {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	piggybankRepo := repository.NewPiggybankRepository(db)
	return NewPiggybankService(piggybankRepo, db)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }
func strPtr(v string) *string     { return &v }

func TestPiggybankService_Create(t *testing.T) {
	service := setupPiggybankTestDB(t)

	piggybank, err := service.Create(1, CreatePiggybankInput{
		Name:         "Summer trip",
		Category:     "travel",
		Emoji:        "🏖️",
		TargetAmount: 1500,
	})

	assert.NoError(t, err)
	assert.NotZero(t, piggybank.ID)
	assert.Equal(t, float64(0), piggybank.CurrentAmount)
	assert.False(t, piggybank.IsAutomatic)
	assert.Nil(t, piggybank.AutoPercentage)
}

func TestPiggybankService_Create_Validation(t *testing.T) {
	service := setupPiggybankTestDB(t)

	_, err := service.Create(1, CreatePiggybankInput{Name: " ", Category: "travel", Emoji: "x", TargetAmount: 100})
	assert.Equal(t, ErrEmptyName, err)

	_, err = service.Create(1, CreatePiggybankInput{Name: "Trip", Category: "travel", Emoji: "x", TargetAmount: 0})
	assert.Equal(t, ErrInvalidTarget, err)

	_, err = service.Create(1, CreatePiggybankInput{Name: "Trip", Category: "travel", Emoji: "x", TargetAmount: 100, IsAutomatic: true})
	assert.Equal(t, ErrInvalidPercentage, err)

	_, err = service.Create(1, CreatePiggybankInput{Name: "Trip", Category: "travel", Emoji: "x", TargetAmount: 100, IsAutomatic: true, AutoPercentage: intPtr(150)})
	assert.Equal(t, ErrInvalidPercentage, err)
}

func TestPiggybankService_Create_Automatic(t *testing.T) {
	service := setupPiggybankTestDB(t)

	piggybank, err := service.Create(1, CreatePiggybankInput{
		Name:           "Rainy day",
		Category:       "savings",
		Emoji:          "☔",
		TargetAmount:   500,
		IsAutomatic:    true,
		AutoPercentage: intPtr(10),
	})

	assert.NoError(t, err)
	assert.True(t, piggybank.IsAutomatic)
	assert.Equal(t, 10, *piggybank.AutoPercentage)
}

func TestPiggybankService_Create_Linked(t *testing.T) {
	service := setupPiggybankTestDB(t)

	travel, err := service.Create(1, CreatePiggybankInput{
		Name:         "Travel",
		Category:     "travel",
		Emoji:        "✈️",
		TargetAmount: 1000,
	})
	assert.NoError(t, err)

	linked, err := service.Create(1, CreatePiggybankInput{
		Name:         "Quit smoking",
		Category:     "health",
		Emoji:        "🚭",
		TargetAmount: 300,
		LinkedID:     &travel.ID,
	})
	assert.NoError(t, err)
	assert.Equal(t, travel.ID, *linked.LinkedID)
}

func TestPiggybankService_Create_LinkedMustExistAndBeOwned(t *testing.T) {
	service := setupPiggybankTestDB(t)

	missing := uint(999)
	_, err := service.Create(1, CreatePiggybankInput{
		Name:         "Trip",
		Category:     "travel",
		Emoji:        "x",
		TargetAmount: 100,
		LinkedID:     &missing,
	})
	assert.Equal(t, ErrLinkedNotFound, err)

	other, err := service.Create(2, CreatePiggybankInput{
		Name:         "Other user's goal",
		Category:     "misc",
		Emoji:        "x",
		TargetAmount: 100,
	})
	assert.NoError(t, err)

	_, err = service.Create(1, CreatePiggybankInput{
		Name:         "Trip",
		Category:     "travel",
		Emoji:        "x",
		TargetAmount: 100,
		LinkedID:     &other.ID,
	})
	assert.Equal(t, ErrLinkedNotFound, err)

	// nothing was created for user 1
	piggybanks, err := service.List(1)
	assert.NoError(t, err)
	assert.Empty(t, piggybanks)
}

func TestPiggybankService_Update_AddThenRemove(t *testing.T) {
	service := setupPiggybankTestDB(t)

	piggybank, err := service.Create(1, CreatePiggybankInput{
		Name:         "Trip",
		Category:     "travel",
		Emoji:        "x",
		TargetAmount: 100,
	})
	assert.NoError(t, err)

	updated, err := service.Update(1, piggybank.ID, UpdatePiggybankInput{AmountToAdd: floatPtr(30)})
	assert.NoError(t, err)
	assert.Equal(t, float64(30), updated.CurrentAmount)

	updated, err = service.Update(1, piggybank.ID, UpdatePiggybankInput{AmountToAdd: floatPtr(20)})
	assert.NoError(t, err)
	assert.Equal(t, float64(50), updated.CurrentAmount)

	_, err = service.Update(1, piggybank.ID, UpdatePiggybankInput{AmountToRemove: floatPtr(100)})
	assert.Equal(t, ErrNegativeBalance, err)

	// rejected removal leaves the balance unchanged
	fetched, err := service.Get(1, piggybank.ID)
	assert.NoError(t, err)
	assert.Equal(t, float64(50), fetched.CurrentAmount)

	updated, err = service.Update(1, piggybank.ID, UpdatePiggybankInput{AmountToRemove: floatPtr(20)})
	assert.NoError(t, err)
	assert.Equal(t, float64(30), updated.CurrentAmount)
}

func TestPiggybankService_Update_OverrideSupersedesDeltas(t *testing.T) {
	service := setupPiggybankTestDB(t)

	piggybank, err := service.Create(1, CreatePiggybankInput{
		Name:         "Trip",
		Category:     "travel",
		Emoji:        "x",
		TargetAmount: 100,
	})
	assert.NoError(t, err)

	updated, err := service.Update(1, piggybank.ID, UpdatePiggybankInput{
		AmountToAdd:   floatPtr(40),
		CurrentAmount: floatPtr(75),
	})
	assert.NoError(t, err)
	assert.Equal(t, float64(75), updated.CurrentAmount)
}

func TestPiggybankService_Update_DisablingAutomaticClearsPercentage(t *testing.T) {
	service := setupPiggybankTestDB(t)

	piggybank, err := service.Create(1, CreatePiggybankInput{
		Name:           "Rainy day",
		Category:       "savings",
		Emoji:          "☔",
		TargetAmount:   500,
		IsAutomatic:    true,
		AutoPercentage: intPtr(15),
	})
	assert.NoError(t, err)

	updated, err := service.Update(1, piggybank.ID, UpdatePiggybankInput{IsAutomatic: boolPtr(false)})
	assert.NoError(t, err)
	assert.False(t, updated.IsAutomatic)
	assert.Nil(t, updated.AutoPercentage)
}

func TestPiggybankService_Update_EnablingAutomaticRequiresPercentage(t *testing.T) {
	service := setupPiggybankTestDB(t)

	piggybank, err := service.Create(1, CreatePiggybankInput{
		Name:         "Trip",
		Category:     "travel",
		Emoji:        "x",
		TargetAmount: 100,
	})
	assert.NoError(t, err)

	_, err = service.Update(1, piggybank.ID, UpdatePiggybankInput{IsAutomatic: boolPtr(true)})
	assert.Equal(t, ErrInvalidPercentage, err)

	updated, err := service.Update(1, piggybank.ID, UpdatePiggybankInput{
		IsAutomatic:    boolPtr(true),
		AutoPercentage: intPtr(25),
	})
	assert.NoError(t, err)
	assert.True(t, updated.IsAutomatic)
	assert.Equal(t, 25, *updated.AutoPercentage)
}

func TestPiggybankService_Update_FieldChanges(t *testing.T) {
	service := setupPiggybankTestDB(t)

	piggybank, err := service.Create(1, CreatePiggybankInput{
		Name:         "Trip",
		Category:     "travel",
		Emoji:        "x",
		TargetAmount: 100,
	})
	assert.NoError(t, err)

	updated, err := service.Update(1, piggybank.ID, UpdatePiggybankInput{
		Name:         strPtr("Big trip"),
		TargetAmount: floatPtr(2000),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Big trip", updated.Name)
	assert.Equal(t, float64(2000), updated.TargetAmount)

	_, err = service.Update(1, piggybank.ID, UpdatePiggybankInput{TargetAmount: floatPtr(-5)})
	assert.Equal(t, ErrInvalidTarget, err)
}

func TestPiggybankService_Update_OtherUsersRowIsNotFound(t *testing.T) {
	service := setupPiggybankTestDB(t)

	piggybank, err := service.Create(1, CreatePiggybankInput{
		Name:         "Trip",
		Category:     "travel",
		Emoji:        "x",
		TargetAmount: 100,
	})
	assert.NoError(t, err)

	_, err = service.Update(2, piggybank.ID, UpdatePiggybankInput{AmountToAdd: floatPtr(10)})
	assert.Equal(t, ErrPiggybankNotFound, err)
}

func TestPiggybankService_Delete(t *testing.T) {
	service := setupPiggybankTestDB(t)

	piggybank, err := service.Create(1, CreatePiggybankInput{
		Name:         "Trip",
		Category:     "travel",
		Emoji:        "x",
		TargetAmount: 100,
	})
	assert.NoError(t, err)

	err = service.Delete(2, piggybank.ID)
	assert.Equal(t, ErrPiggybankNotFound, err)

	err = service.Delete(1, piggybank.ID)
	assert.NoError(t, err)

	_, err = service.Get(1, piggybank.ID)
	assert.Equal(t, ErrPiggybankNotFound, err)
}
