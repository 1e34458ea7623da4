package models

import (
	"time"

	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

type Transaction struct {
	gorm.Model
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	User        User            `gorm:"foreignKey:UserID" json:"-"`
	Category    string          `gorm:"not null" json:"category"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Note        string          `gorm:"type:text" json:"note,omitempty"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Currency    string          `gorm:"not null;default:EUR" json:"currency"`
}
