package models

import "time"

type DepositModel struct {
	ID              string  `gorm:"primaryKey;size:32"`
	RaffleID        string  `gorm:"size:32;not null;index"`
	SponsorID       string  `gorm:"size:32;not null;index"`
	ParticipantID   string  `gorm:"size:32;not null;index"`
	Amount          int64   `gorm:"not null"`
	Currency        string  `gorm:"size:10;not null;default:'BRL'"`
	QuotaCount      int     `gorm:"not null"`
	ProofRef        string  `gorm:"size:512"`
	Status          string  `gorm:"size:20;not null;index"`
	ReviewedBy      *string `gorm:"size:32"`
	ReviewedAt      *time.Time
	RejectionReason string    `gorm:"size:500"`
	Version         int       `gorm:"default:0"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

func (DepositModel) TableName() string {
	return "deposits"
}

type ParticipantModel struct {
	ID        string `gorm:"primaryKey;size:32"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time
}

func (ParticipantModel) TableName() string {
	return "participants"
}

type SponsorModel struct {
	ID         string `gorm:"primaryKey;size:32"`
	Name       string `gorm:"size:100;not null"`
	Slug       string `gorm:"size:100;not null;uniqueIndex"`
	LogoURL    string `gorm:"size:512"`
	CouponCode string `gorm:"size:50"`
	Active     bool   `gorm:"not null;default:true"`
	CreatedAt  time.Time
}

func (SponsorModel) TableName() string {
	return "sponsors"
}

// All returns every model, in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&SponsorModel{},
		&ParticipantModel{},
		&RaffleModel{},
		&DepositModel{},
		&EntryModel{},
	}
}
