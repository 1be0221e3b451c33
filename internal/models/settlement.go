package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wishweek/backend/internal/types"
	"gorm.io/gorm"
)

// Settlement is the result of settling a week: the budget that was set,
// the amount that was spent and the delta that moved into the wish pool.
type Settlement struct {
	Week         types.Week
	BudgetAmount decimal.Decimal
	SpentAmount  decimal.Decimal
	SavedAmount  decimal.Decimal
	BudgetSet    bool // false if no budget was ever set for the week
	Settled      bool
}

// CheckWeekSettled reports whether the settlement for a week has
// already run.
func CheckWeekSettled(db *gorm.DB, week types.Week) (bool, error) {
	var budget WeeklyBudget

	err := db.Where(&WeeklyBudget{Week: week}).First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrResourceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return budget.Settled, nil
}

// PreviewSettlement computes the settlement amounts for a week without
// writing anything. Clients use this to present the saved amount to the
// user before committing the settlement.
func PreviewSettlement(db *gorm.DB, week types.Week) (Settlement, error) {
	settlement := Settlement{Week: week}

	var budget WeeklyBudget
	err := db.Where(&WeeklyBudget{Week: week}).First(&budget).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrResourceNotFound):
		// No budget for the week: nothing is saved and nothing is
		// deducted, the week settles with a zero delta
	case err != nil:
		return Settlement{}, err
	default:
		settlement.BudgetSet = true
		settlement.BudgetAmount = budget.Amount
		settlement.Settled = budget.Settled
	}

	spent, err := WeekSpent(db, week)
	if err != nil {
		return Settlement{}, err
	}
	settlement.SpentAmount = spent

	if settlement.BudgetSet {
		settlement.SavedAmount = settlement.BudgetAmount.Sub(spent)
	}

	return settlement, nil
}

// SettleWeek runs the settlement for a week.
//
// It computes saved = budget - spent, appends the matching credit entry
// to the wish pool ledger and marks the week's budget as settled, all
// in one database transaction. A second settlement attempt for the same
// week fails with ErrWeekAlreadySettled and leaves the pool balance
// untouched; the unique index on the ledger's week column backs this
// check on the database side.
//
// A week for which no budget was ever set settles with a saved amount
// of zero; its budget row is created settled so that the check-then-act
// cannot repeat.
func SettleWeek(db *gorm.DB, week types.Week) (PoolEntry, error) {
	if time.Now().Before(week.Next().Monday()) {
		return PoolEntry{}, ErrWeekNotElapsed
	}

	var entry PoolEntry

	err := db.Transaction(func(tx *gorm.DB) error {
		var budget WeeklyBudget
		budgetSet := true

		err := tx.Where(&WeeklyBudget{Week: week}).First(&budget).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrResourceNotFound) {
			budgetSet = false
		} else if err != nil {
			return err
		}

		if budget.Settled {
			return ErrWeekAlreadySettled
		}

		spent, err := WeekSpent(tx, week)
		if err != nil {
			return err
		}

		// No budget, no delta: the week still settles so that it is
		// not offered for settlement again
		saved := decimal.Zero
		if budgetSet {
			saved = budget.Amount.Sub(spent)
		}

		w := week
		entry = PoolEntry{
			Week:         &w,
			BudgetAmount: budget.Amount,
			SpentAmount:  spent,
			SavedAmount:  saved,
		}

		err = tx.Create(&entry).Error
		if err != nil {
			return err
		}

		if budgetSet {
			return tx.Model(&budget).Select("Settled").Updates(WeeklyBudget{Settled: true}).Error
		}

		budget.Week = week
		budget.Settled = true
		return tx.Create(&budget).Error
	})
	if err != nil {
		return PoolEntry{}, err
	}

	return entry, nil
}
