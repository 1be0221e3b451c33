package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wishweek/backend/internal/types"
	"gorm.io/gorm"
)

// WeeklyBudget is the spending allowance for a single calendar week.
//
// There is exactly one budget per week. Once the week has elapsed and
// its settlement ran, Settled is true and the budget is frozen.
type WeeklyBudget struct {
	DefaultModel
	Week    types.Week      `gorm:"uniqueIndex"`
	Amount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note    string
	Settled bool
}

func (b *WeeklyBudget) BeforeSave(_ *gorm.DB) error {
	b.Note = strings.TrimSpace(b.Note)
	return nil
}

func (b *WeeklyBudget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	// A budget without a week is for the current week
	if b.Week.IsZero() {
		b.Week = types.WeekOf(time.Now())
	}

	return nil
}

// Spent returns the sum of all transaction amounts logged against the
// budget's week.
func (b WeeklyBudget) Spent(db *gorm.DB) (decimal.Decimal, error) {
	return WeekSpent(db, b.Week)
}

// WeekSpent returns the sum of all transaction amounts for a week.
func WeekSpent(db *gorm.DB, week types.Week) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Model(&Transaction{}).
		Where(&Transaction{Week: week}).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return sum.Decimal, nil
}
