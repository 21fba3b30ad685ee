package http

import (
	"gorm.io/gorm"

	"raffle/internal/infrastructure/repository"
	"raffle/internal/shared/db"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	raffleRepo      *repository.RaffleRepository
	entryRepo       *repository.EntryRepository
	depositRepo     *repository.DepositRepository
	sponsorRepo     *repository.SponsorRepository
	participantRepo *repository.ParticipantRepository
	txMgr           *db.TransactionManager
}

func newRepositories(gdb *gorm.DB) *repositories {
	return &repositories{
		raffleRepo:      repository.NewRaffleRepository(gdb),
		entryRepo:       repository.NewEntryRepository(gdb),
		depositRepo:     repository.NewDepositRepository(gdb),
		sponsorRepo:     repository.NewSponsorRepository(gdb),
		participantRepo: repository.NewParticipantRepository(gdb),
		txMgr:           db.NewTransactionManager(gdb),
	}
}
