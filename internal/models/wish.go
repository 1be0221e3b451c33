package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Wish is a discretionary purchase the user wants to fund from the
// wish pool.
type Wish struct {
	DefaultModel
	Name      string
	Note      string
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ImageURL  string
	Fulfilled bool
}

func (w *Wish) BeforeSave(_ *gorm.DB) error {
	w.Name = strings.TrimSpace(w.Name)
	w.Note = strings.TrimSpace(w.Note)

	return nil
}

func (w *Wish) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(w.Amount) {
		return ErrWishAmountNotPositive
	}

	return nil
}

// FulfillWish pays for a wish out of the wish pool.
//
// It appends a deduction entry to the pool ledger and marks the wish as
// fulfilled in a single database transaction. The wish state is re-read
// inside the transaction so that two concurrent fulfillments cannot
// both succeed.
func FulfillWish(db *gorm.DB, id uuid.UUID) (PoolEntry, error) {
	var entry PoolEntry

	err := db.Transaction(func(tx *gorm.DB) error {
		var wish Wish
		err := tx.First(&wish, id).Error
		if err != nil {
			return err
		}

		if wish.Fulfilled {
			return ErrWishAlreadyFulfilled
		}

		if !wish.Amount.IsPositive() {
			return ErrWishAmountNotPositive
		}

		balance, err := PoolBalance(tx)
		if err != nil {
			return err
		}

		if balance.LessThan(wish.Amount) {
			return ErrPoolBalanceInsufficient
		}

		entry = PoolEntry{
			SavedAmount: wish.Amount.Neg(),
			Deduction:   true,
			WishID:      &wish.ID,
			WishName:    wish.Name,
		}

		err = tx.Create(&entry).Error
		if err != nil {
			return err
		}

		return tx.Model(&wish).Select("Fulfilled").Updates(Wish{Fulfilled: true}).Error
	})
	if err != nil {
		return PoolEntry{}, err
	}

	return entry, nil
}

// RevokeWishFulfillment undoes a wish fulfillment.
//
// The deduction ledger entry for the wish is deleted, which restores
// the pool balance, and the wish is marked as unfulfilled again. A wish
// without a matching deduction entry indicates inconsistent data and is
// reported, not repaired.
func RevokeWishFulfillment(db *gorm.DB, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var wish Wish
		err := tx.First(&wish, id).Error
		if err != nil {
			return err
		}

		if !wish.Fulfilled {
			return ErrWishNotFulfilled
		}

		var entry PoolEntry
		err = tx.Where(&PoolEntry{WishID: &wish.ID, Deduction: true}).First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrResourceNotFound) {
			return ErrDeductionEntryNotFound
		}
		if err != nil {
			return err
		}

		err = tx.Delete(&entry).Error
		if err != nil {
			return err
		}

		return tx.Model(&wish).Select("Fulfilled").Updates(Wish{Fulfilled: false}).Error
	})
}
