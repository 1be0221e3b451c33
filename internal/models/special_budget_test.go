package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wishweek/backend/internal/models"
)

func (suite *TestSuiteStandard) TestSpecialBudgetNameUnique() {
	_ = suite.createTestSpecialBudget(models.SpecialBudget{
		Name:        "Japan trip",
		TotalBudget: decimal.NewFromInt(5000),
	})

	err := models.DB.Create(&models.SpecialBudget{
		Name:        "Japan trip",
		TotalBudget: decimal.NewFromInt(100),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrSpecialBudgetNameNotUnique)
}

func (suite *TestSuiteStandard) TestSpecialBudgetItemIntegrity() {
	err := models.DB.Create(&models.SpecialBudgetItem{
		SpecialBudgetID: uuid.New(),
		Name:            "Orphan",
	}).Error

	assert.NotNil(suite.T(), err)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestSpecialBudgetSums() {
	budget := suite.createTestSpecialBudget(models.SpecialBudget{
		Name:        "Japan trip",
		TotalBudget: decimal.NewFromInt(5000),
	})

	_ = suite.createTestSpecialBudgetItem(models.SpecialBudgetItem{
		SpecialBudgetID: budget.ID,
		Name:            "Flights",
		BudgetAmount:    decimal.NewFromInt(1500),
		ActualAmount:    decimal.NewFromInt(1450),
	})

	_ = suite.createTestSpecialBudgetItem(models.SpecialBudgetItem{
		SpecialBudgetID: budget.ID,
		Name:            "Hotels",
		BudgetAmount:    decimal.NewFromInt(2000),
		ActualAmount:    decimal.NewFromInt(0),
	})

	planned, err := budget.PlannedSum(models.DB)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), planned.Equal(decimal.NewFromInt(3500)), "planned sum is %s, expected 3500", planned)

	actual, err := budget.ActualSum(models.DB)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), actual.Equal(decimal.NewFromInt(1450)), "actual sum is %s, expected 1450", actual)
}

func (suite *TestSuiteStandard) TestSpecialBudgetTrimWhitespace() {
	budget := suite.createTestSpecialBudget(models.SpecialBudget{
		Name: "  Japan trip ",
	})

	assert.Equal(suite.T(), "Japan trip", budget.Name)
}
