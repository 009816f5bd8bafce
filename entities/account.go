package entities

import "time"

// Account is the only persisted record. Session identity lives outside it.
type Account struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:80;not null" json:"name"`
	Email        string    `gorm:"size:80;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:80;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Account) TableName() string { return "accounts" }
