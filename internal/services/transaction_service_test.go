package services

import (
	"testing"
	"time"

	"github.com/centsible/centsible/internal/database"
	"github.com/centsible/centsible/internal/models"
	"github.com/centsible/centsible/internal/repository"
	"github.com/stretchr/testify/assert"
)

func setupTransactionTestDB(t *testing.T) *TransactionService {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	transactionRepo := repository.NewTransactionRepository(db)
	return NewTransactionService(transactionRepo)
}

func TestTransactionService_Create(t *testing.T) {
	service := setupTransactionTestDB(t)

	date := time.Now().AddDate(0, 0, -1)
	transaction, err := service.Create(1, CreateTransactionInput{
		Category: "Food",
		Amount:   42.50,
		Type:     models.TransactionTypeExpense,
		Date:     &date,
		Note:     "groceries",
	})

	assert.NoError(t, err)
	assert.NotZero(t, transaction.ID)
	assert.Equal(t, uint(1), transaction.UserID)
	assert.Equal(t, "Food", transaction.Category)
	assert.Equal(t, 42.50, transaction.Amount)
	assert.Equal(t, models.TransactionTypeExpense, transaction.Type)
	assert.Equal(t, "groceries", transaction.Note)
	assert.Equal(t, "EUR", transaction.Currency)
}

func TestTransactionService_Create_DefaultsDateToNow(t *testing.T) {
	service := setupTransactionTestDB(t)

	transaction, err := service.Create(1, CreateTransactionInput{
		Category: "Salary",
		Amount:   1000,
		Type:     models.TransactionTypeIncome,
	})

	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), transaction.Date, time.Minute)
}

func TestTransactionService_Create_Validation(t *testing.T) {
	service := setupTransactionTestDB(t)

	_, err := service.Create(1, CreateTransactionInput{Category: "Food", Amount: 0, Type: models.TransactionTypeExpense})
	assert.Equal(t, ErrInvalidAmount, err)

	_, err = service.Create(1, CreateTransactionInput{Category: "Food", Amount: -10, Type: models.TransactionTypeExpense})
	assert.Equal(t, ErrInvalidAmount, err)

	_, err = service.Create(1, CreateTransactionInput{Category: "Food", Amount: 10, Type: "transfer"})
	assert.Equal(t, ErrInvalidType, err)

	_, err = service.Create(1, CreateTransactionInput{Category: "  ", Amount: 10, Type: models.TransactionTypeExpense})
	assert.Equal(t, ErrEmptyCategory, err)
}

func TestTransactionService_Create_RejectsFutureDate(t *testing.T) {
	service := setupTransactionTestDB(t)

	future := time.Now().AddDate(0, 0, 1)
	_, err := service.Create(1, CreateTransactionInput{
		Category: "Food",
		Amount:   10,
		Type:     models.TransactionTypeExpense,
		Date:     &future,
	})

	assert.Equal(t, ErrFutureDate, err)
}

func TestTransactionService_RoundTrip(t *testing.T) {
	service := setupTransactionTestDB(t)

	created, err := service.Create(1, CreateTransactionInput{
		Category:    "Travel",
		Amount:      99.99,
		Type:        models.TransactionTypeExpense,
		Description: "train ticket",
	})
	assert.NoError(t, err)

	fetched, err := service.Get(1, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.Category, fetched.Category)
	assert.Equal(t, created.Amount, fetched.Amount)
	assert.Equal(t, created.Type, fetched.Type)
	assert.Equal(t, created.Description, fetched.Description)
	assert.Equal(t, created.Currency, fetched.Currency)
}

func TestTransactionService_Get_OtherUsersRowIsNotFound(t *testing.T) {
	service := setupTransactionTestDB(t)

	created, err := service.Create(1, CreateTransactionInput{
		Category: "Food",
		Amount:   10,
		Type:     models.TransactionTypeExpense,
	})
	assert.NoError(t, err)

	_, err = service.Get(2, created.ID)
	assert.Equal(t, ErrTransactionNotFound, err)
}

func TestTransactionService_List_OrderedNewestFirst(t *testing.T) {
	service := setupTransactionTestDB(t)

	older := time.Now().AddDate(0, 0, -5)
	newer := time.Now().AddDate(0, 0, -1)
	service.Create(1, CreateTransactionInput{Category: "A", Amount: 1, Type: models.TransactionTypeIncome, Date: &older})
	service.Create(1, CreateTransactionInput{Category: "B", Amount: 2, Type: models.TransactionTypeIncome, Date: &newer})
	service.Create(2, CreateTransactionInput{Category: "C", Amount: 3, Type: models.TransactionTypeIncome})

	transactions, err := service.List(1)
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, "B", transactions[0].Category)
	assert.Equal(t, "A", transactions[1].Category)
}

func TestTransactionService_Update_PartialFields(t *testing.T) {
	service := setupTransactionTestDB(t)

	created, err := service.Create(1, CreateTransactionInput{
		Category: "Food",
		Amount:   10,
		Type:     models.TransactionTypeExpense,
		Note:     "lunch",
	})
	assert.NoError(t, err)

	newAmount := 25.0
	updated, err := service.Update(1, created.ID, UpdateTransactionInput{Amount: &newAmount})
	assert.NoError(t, err)

	assert.Equal(t, 25.0, updated.Amount)
	assert.Equal(t, "Food", updated.Category)
	assert.Equal(t, "lunch", updated.Note)
	assert.Equal(t, models.TransactionTypeExpense, updated.Type)
}

func TestTransactionService_Update_RejectsFutureDate(t *testing.T) {
	service := setupTransactionTestDB(t)

	created, err := service.Create(1, CreateTransactionInput{
		Category: "Food",
		Amount:   10,
		Type:     models.TransactionTypeExpense,
	})
	assert.NoError(t, err)

	future := time.Now().AddDate(0, 0, 2)
	_, err = service.Update(1, created.ID, UpdateTransactionInput{Date: &future})
	assert.Equal(t, ErrFutureDate, err)

	// no partial write happened
	fetched, err := service.Get(1, created.ID)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), fetched.Date, time.Minute)
}

func TestTransactionService_Update_OtherUsersRowIsNotFound(t *testing.T) {
	service := setupTransactionTestDB(t)

	created, err := service.Create(1, CreateTransactionInput{
		Category: "Food",
		Amount:   10,
		Type:     models.TransactionTypeExpense,
	})
	assert.NoError(t, err)

	amount := 50.0
	_, err = service.Update(2, created.ID, UpdateTransactionInput{Amount: &amount})
	assert.Equal(t, ErrTransactionNotFound, err)
}

func TestTransactionService_Delete(t *testing.T) {
	service := setupTransactionTestDB(t)

	created, err := service.Create(1, CreateTransactionInput{
		Category: "Food",
		Amount:   10,
		Type:     models.TransactionTypeExpense,
	})
	assert.NoError(t, err)

	err = service.Delete(2, created.ID)
	assert.Equal(t, ErrTransactionNotFound, err)

	err = service.Delete(1, created.ID)
	assert.NoError(t, err)

	_, err = service.Get(1, created.ID)
	assert.Equal(t, ErrTransactionNotFound, err)
}
