package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/centsible/centsible/internal/config"
	"github.com/centsible/centsible/internal/database"
	"github.com/centsible/centsible/internal/models"
	"github.com/centsible/centsible/internal/repository"
	"github.com/centsible/centsible/internal/services"
	"github.com/spf13/cobra"
)

type TransactionSeed struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Note        string  `json:"note"`
	Description string  `json:"description"`
	Currency    string  `json:"currency"`
}

type UserSeed struct {
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Password     string            `json:"password"`
	Transactions []TransactionSeed `json:"transactions"`
}

var (
	seedFile   string
	strictSeed bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo users and transactions from a JSON file",
	Long: `Seed users and their transactions from a JSON file.

Expected JSON format:
[
  {
    "name": "Demo User",
    "email": "demo@example.com",
    "password": "password123",
    "transactions": [
      {"category": "Salary", "amount": 2500, "type": "income", "date": "2026-08-01"}
    ]
  }
]

By default, entries that fail validation are skipped and reported.
Use --strict to abort on the first invalid entry instead.`,
	Example: `  centsible seed -f demo.json
  centsible seed --file demo.json --strict`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSeed(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "JSON file to seed from (required)")
	seedCmd.Flags().BoolVar(&strictSeed, "strict", false, "Fail on any validation error")
	seedCmd.MarkFlagRequired("file")
}

func runSeed() error {
	data, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var seeds []UserSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	authService := services.NewAuthService(userRepo, db, cfg.JWT.Secret, cfg.JWT.TTL)
	transactionService := services.NewTransactionService(transactionRepo)

	log.Printf("Seeding %d users from %s", len(seeds), seedFile)

	seeded := 0
	skipped := 0

	for _, seed := range seeds {
		if err := seedUser(seed, userRepo, authService, transactionService); err != nil {
			if strictSeed {
				return fmt.Errorf("seed failed for %s: %w", seed.Email, err)
			}
			log.Printf("Skipped %s: %v", seed.Email, err)
			skipped++
			continue
		}
		seeded++
	}

	log.Printf("Seed complete: %d users seeded, %d skipped", seeded, skipped)
	return nil
}

func seedUser(seed UserSeed, userRepo *repository.UserRepository, authService *services.AuthService, transactionService *services.TransactionService) error {
	existing, err := userRepo.FindByEmail(seed.Email)
	if err != nil {
		return err
	}

	var userID uint
	if existing != nil {
		log.Printf("User %s already exists, seeding transactions only", seed.Email)
		userID = existing.ID
	} else {
		user, err := authService.Register(seed.Name, seed.Email, seed.Password)
		if err != nil {
			return fmt.Errorf("failed to register user: %w", err)
		}
		userID = user.ID
	}

	for i, tx := range seed.Transactions {
		date, err := parseSeedDate(tx.Date)
		if err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}

		_, err = transactionService.Create(userID, services.CreateTransactionInput{
			Category:    tx.Category,
			Amount:      tx.Amount,
			Type:        models.TransactionType(tx.Type),
			Date:        date,
			Note:        tx.Note,
			Description: tx.Description,
			Currency:    tx.Currency,
		})
		if err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}

	log.Printf("Seeded %s with %d transactions", seed.Email, len(seed.Transactions))
	return nil
}

func parseSeedDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q, use YYYY-MM-DD or RFC3339", value)
}
