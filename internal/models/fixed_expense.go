package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FixedExpense is a recurring monthly cost, e.g. rent. Fixed expenses
// are independent of the weekly cycle and only feed into the suggested
// weekly budget.
type FixedExpense struct {
	DefaultModel
	Name       string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ExpireDate *time.Time      // nil means the expense never expires
	Enabled    bool
}

var ErrFixedExpenseAmountNegative = errors.New("fixed expense amounts must not be negative")

func (f *FixedExpense) BeforeSave(_ *gorm.DB) error {
	f.Name = strings.TrimSpace(f.Name)
	return nil
}

func (f *FixedExpense) AfterSave(_ *gorm.DB) error {
	if f.Amount.IsNegative() {
		return ErrFixedExpenseAmountNegative
	}

	return nil
}

// Active reports whether the expense counts toward the suggested
// budget at the given time.
func (f FixedExpense) Active(at time.Time) bool {
	return f.Enabled && (f.ExpireDate == nil || f.ExpireDate.After(at))
}

// ActiveFixedExpenseSum returns the sum of all enabled, unexpired
// fixed expenses at the given time.
func ActiveFixedExpenseSum(db *gorm.DB, at time.Time) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Model(&FixedExpense{}).
		Where("enabled = ?", true).
		Where(db.Where("expire_date IS NULL").Or("expire_date > ?", at)).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return sum.Decimal, nil
}

// SuggestedWeeklyBudget computes the weekly allowance that is left
// after fixed expenses: floor((monthly - fixed) / 4).
func SuggestedWeeklyBudget(db *gorm.DB, monthly decimal.Decimal, at time.Time) (decimal.Decimal, error) {
	fixed, err := ActiveFixedExpenseSum(db, at)
	if err != nil {
		return decimal.Zero, err
	}

	return monthly.Sub(fixed).Div(decimal.NewFromInt(4)).Floor(), nil
}
