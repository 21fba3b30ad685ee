package models

import (
	"time"

	"gorm.io/datatypes"
)

type RaffleModel struct {
	ID                  string    `gorm:"primaryKey;size:32"`
	Title               string    `gorm:"size:200;not null"`
	Description         string    `gorm:"type:text"`
	PrizeName           string    `gorm:"size:200"`
	PrizeImageURL       string    `gorm:"size:512"`
	PrizeValue          int64     `gorm:"not null;default:0"`
	Currency            string    `gorm:"size:10;not null;default:'BRL'"`
	QuotaValue          int64     `gorm:"not null"`
	Numbering           string    `gorm:"size:20;not null;default:'sequential'"`
	StartDate           time.Time `gorm:"not null"`
	EndDate             time.Time `gorm:"not null;index"`
	Status              string    `gorm:"size:20;not null;index"`
	WinnerID            *string   `gorm:"size:32"`
	WinningTicketNumber *int64
	DrawDate            *time.Time
	DrawAudit           datatypes.JSON
	NotificationStatus  string `gorm:"size:20;index"`
	Version             int    `gorm:"default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (RaffleModel) TableName() string {
	return "raffles"
}

// EntryModel is one ticket. (raffle_id, ticket_number) is unique so a
// collision that slips past the allocator fails the insert.
type EntryModel struct {
	ID            uint      `gorm:"primaryKey"`
	RaffleID      string    `gorm:"size:32;not null;uniqueIndex:uk_entries_raffle_ticket,priority:1"`
	TicketNumber  int64     `gorm:"not null;uniqueIndex:uk_entries_raffle_ticket,priority:2"`
	ParticipantID string    `gorm:"size:32;not null;index"`
	DepositID     string    `gorm:"size:32;not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (EntryModel) TableName() string {
	return "entries"
}
