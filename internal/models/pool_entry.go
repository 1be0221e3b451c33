package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wishweek/backend/internal/types"
	"gorm.io/gorm"
)

// PoolEntry is a single entry in the wish pool ledger.
//
// Settlement credits carry the week they settle and the budget/spent
// breakdown; wish fulfillments carry the wish and a negative saved
// amount instead. The pool balance is the sum over all live entries,
// it is never stored separately.
type PoolEntry struct {
	DefaultModel
	Week         *types.Week     `gorm:"uniqueIndex"` // nil for wish-linked entries
	BudgetAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SpentAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SavedAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Deduction    bool
	WishID       *uuid.UUID
	Wish         *Wish `json:"-"`
	WishName     string
}

func (e *PoolEntry) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	if e.WishID != nil {
		return tx.First(&Wish{}, *e.WishID).Error
	}

	return nil
}

// PoolBalance returns the current wish pool balance, the sum of the
// saved amounts of all ledger entries.
func PoolBalance(db *gorm.DB) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Model(&PoolEntry{}).
		Select("SUM(saved_amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return sum.Decimal, nil
}
