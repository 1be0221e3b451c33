package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wishweek/backend/internal/types"
	"gorm.io/gorm"
)

// Transaction is a single dated spending entry. It always belongs to
// exactly one calendar week, derived from its date.
type Transaction struct {
	DefaultModel
	Week   types.Week `gorm:"index"`
	Date   time.Time
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note   string
}

var ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave sets the timezone for the Date to UTC and keeps the
// week column consistent with the date.
//
// For partial updates gorm calls the hook on the loaded row, not on the
// values being written, so those are read from and corrected on the
// statement destination.
func (t *Transaction) BeforeSave(tx *gorm.DB) (err error) {
	if dest, ok := tx.Statement.Dest.(Transaction); ok {
		date := dest.Date.In(time.UTC)
		if dest.Date.IsZero() {
			date = time.Now().In(time.UTC)
		}

		tx.Statement.SetColumn("Date", date)
		tx.Statement.SetColumn("Week", types.WeekOf(date))
		tx.Statement.SetColumn("Note", strings.TrimSpace(dest.Note))
		return nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Week = types.WeekOf(t.Date)
	t.Note = strings.TrimSpace(t.Note)

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	return nil
}
