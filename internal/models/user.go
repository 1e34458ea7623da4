package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name         string        `gorm:"not null" json:"name"`
	Email        string        `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string        `gorm:"not null" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"-"`
	Piggybanks   []Piggybank   `gorm:"foreignKey:UserID" json:"-"`
}
