package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Paginate is a GORM scope applying page/pageSize as LIMIT/OFFSET.
// Page is 1-based; out of range values fall back to defaults.
//
// Example usage:
//
//	db.Model(&models.EntryModel{}).Scopes(db.Paginate(page, pageSize)).Find(&rows)
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		page, pageSize = NormalizePage(page, pageSize)
		return tx.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// NormalizePage clamps page and pageSize into their valid ranges.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// ForUpdate is a GORM scope adding SELECT ... FOR UPDATE.
// Drivers without row locks (sqlite) ignore the clause.
func ForUpdate() func(db *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
}
