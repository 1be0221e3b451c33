package models_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wishweek/backend/internal/models"
	"github.com/wishweek/backend/internal/types"
)

func (suite *TestSuiteStandard) TestWeeklyBudgetWeekUnique() {
	week := types.NewWeek(2022, 7)

	_ = suite.createTestWeeklyBudget(models.WeeklyBudget{
		Week:   week,
		Amount: decimal.NewFromInt(2000),
	})

	err := models.DB.Create(&models.WeeklyBudget{
		Week:   week,
		Amount: decimal.NewFromInt(500),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrBudgetWeekNotUnique)
}

func (suite *TestSuiteStandard) TestWeeklyBudgetDefaultWeek() {
	budget := suite.createTestWeeklyBudget(models.WeeklyBudget{
		Amount: decimal.NewFromInt(2000),
	})

	assert.True(suite.T(), budget.Week.Equal(types.WeekOf(time.Now())))
}

func (suite *TestSuiteStandard) TestWeeklyBudgetTrimWhitespace() {
	budget := suite.createTestWeeklyBudget(models.WeeklyBudget{
		Amount: decimal.NewFromInt(2000),
		Note:   " Vacation week   ",
	})

	assert.Equal(suite.T(), "Vacation week", budget.Note)
}

func (suite *TestSuiteStandard) TestWeeklyBudgetSpent() {
	week := types.NewWeek(2022, 7)

	budget := suite.createTestWeeklyBudget(models.WeeklyBudget{
		Week:   week,
		Amount: decimal.NewFromInt(2000),
	})

	_ = suite.createTestTransaction(models.Transaction{
		Date:   week.Monday(),
		Amount: decimal.NewFromInt(120),
	})

	_ = suite.createTestTransaction(models.Transaction{
		Date:   week.Monday().AddDate(0, 0, 6),
		Amount: decimal.NewFromInt(80),
	})

	// Transactions of other weeks do not count
	_ = suite.createTestTransaction(models.Transaction{
		Date:   week.Next().Monday(),
		Amount: decimal.NewFromInt(999),
	})

	spent, err := budget.Spent(models.DB)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), spent.Equal(decimal.NewFromInt(200)), "spent sum is %s, expected 200", spent)
}

func (suite *TestSuiteStandard) TestWeekSpentEmpty() {
	spent, err := models.WeekSpent(models.DB, types.NewWeek(2022, 7))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), spent.IsZero())
}
