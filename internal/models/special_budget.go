package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SpecialBudget is an independent, named savings goal outside the
// weekly cycle, e.g. a trip. It is broken down into items that track a
// planned amount against what was actually spent.
type SpecialBudget struct {
	DefaultModel
	Name         string `gorm:"uniqueIndex"`
	Icon         string
	TotalBudget  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PinnedToHome bool
	Items        []SpecialBudgetItem `json:"-"`
}

func (s *SpecialBudget) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	return nil
}

type SpecialBudgetItem struct {
	DefaultModel
	SpecialBudget   SpecialBudget `json:"-"`
	SpecialBudgetID uuid.UUID
	Name            string
	BudgetAmount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ActualAmount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (i *SpecialBudgetItem) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	return nil
}

func (i *SpecialBudgetItem) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*SpecialBudgetItem)
	return i.checkIntegrity(tx, *toSave)
}

func (i *SpecialBudgetItem) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(SpecialBudgetItem)

	if tx.Statement.Changed("SpecialBudgetID") {
		err := i.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the special budget the item references
// exists.
func (i *SpecialBudgetItem) checkIntegrity(tx *gorm.DB, toSave SpecialBudgetItem) error {
	return tx.First(&SpecialBudget{}, toSave.SpecialBudgetID).Error
}

// PlannedSum returns the sum of the budget amounts of the budget's items.
func (s SpecialBudget) PlannedSum(db *gorm.DB) (decimal.Decimal, error) {
	return specialBudgetItemSum(db, s.ID, "budget_amount")
}

// ActualSum returns the sum of the actual amounts of the budget's items.
func (s SpecialBudget) ActualSum(db *gorm.DB) (decimal.Decimal, error) {
	return specialBudgetItemSum(db, s.ID, "actual_amount")
}

func specialBudgetItemSum(db *gorm.DB, id uuid.UUID, column string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Model(&SpecialBudgetItem{}).
		Where(&SpecialBudgetItem{SpecialBudgetID: id}).
		Select("SUM(" + column + ")").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return sum.Decimal, nil
}
