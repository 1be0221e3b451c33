package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/wishweek/backend/internal/controllers/v1"
	"github.com/wishweek/backend/internal/models"
	"github.com/wishweek/backend/test"
)

func createTestSpecialBudget(t *testing.T, e v1.SpecialBudgetEditable, expectedStatus ...int) v1.SpecialBudgetResponse {
	if e.Name == "" {
		e.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.SpecialBudgetEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/special-budgets", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var budget v1.SpecialBudgetCreateResponse
	test.DecodeResponse(t, &r, &budget)

	if r.Code == http.StatusCreated {
		return budget.Data[0]
	}

	return v1.SpecialBudgetResponse{}
}

// TestSpecialBudgetsCreateDuplicateName verifies that names are unique.
func (suite *TestSuiteStandard) TestSpecialBudgetsCreateDuplicateName() {
	_ = createTestSpecialBudget(suite.T(), v1.SpecialBudgetEditable{Name: "Japan trip"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/special-budgets", []v1.SpecialBudgetEditable{{Name: "Japan trip"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.SpecialBudgetCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Data[0].Error, models.ErrSpecialBudgetNameNotUnique.Error())
}

// TestSpecialBudgetsSums verifies the computed sums and the item
// ordering in the response.
func (suite *TestSuiteStandard) TestSpecialBudgetsSums() {
	budget := createTestSpecialBudget(suite.T(), v1.SpecialBudgetEditable{Name: "Japan trip", TotalBudget: decimal.NewFromInt(2500)})

	_ = createTestSpecialBudgetItem(suite.T(), v1.SpecialBudgetItemEditable{SpecialBudgetID: budget.Data.ID, Name: "Flights", BudgetAmount: decimal.NewFromInt(800), ActualAmount: decimal.NewFromFloat(763.5)})
	_ = createTestSpecialBudgetItem(suite.T(), v1.SpecialBudgetItemEditable{SpecialBudgetID: budget.Data.ID, Name: "accommodation", BudgetAmount: decimal.NewFromInt(900)})
	_ = createTestSpecialBudgetItem(suite.T(), v1.SpecialBudgetItemEditable{SpecialBudgetID: budget.Data.ID, Name: "Museum tickets", BudgetAmount: decimal.NewFromInt(100), ActualAmount: decimal.NewFromInt(40)})

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SpecialBudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.True(suite.T(), response.Data.PlannedSum.Equal(decimal.NewFromInt(1800)), "Planned sum is %s, expected 1800", response.Data.PlannedSum)
	assert.True(suite.T(), response.Data.ActualSum.Equal(decimal.NewFromFloat(803.5)), "Actual sum is %s, expected 803.5", response.Data.ActualSum)
	assert.True(suite.T(), response.Data.Remaining.Equal(decimal.NewFromFloat(1696.5)), "Remaining is %s, expected 1696.5", response.Data.Remaining)

	// Items are ordered by name, ignoring case
	require.Len(suite.T(), response.Data.Items, 3)
	assert.Equal(suite.T(), "accommodation", response.Data.Items[0].Name)
	assert.Equal(suite.T(), "Flights", response.Data.Items[1].Name)
	assert.Equal(suite.T(), "Museum tickets", response.Data.Items[2].Name)
}

func (suite *TestSuiteStandard) TestSpecialBudgetsGetFilter() {
	_ = createTestSpecialBudget(suite.T(), v1.SpecialBudgetEditable{Name: "Japan trip", PinnedToHome: true})
	_ = createTestSpecialBudget(suite.T(), v1.SpecialBudgetEditable{Name: "Christmas presents", PinnedToHome: true})
	_ = createTestSpecialBudget(suite.T(), v1.SpecialBudgetEditable{Name: "Car repairs"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Name", "name=trip", 1},
		{"Pinned", "pinnedToHome=true", 2},
		{"Not pinned", "pinnedToHome=false", 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/special-budgets?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SpecialBudgetListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data), "Request: %s", tt.query)
		})
	}
}

func (suite *TestSuiteStandard) TestSpecialBudgetsUpdate() {
	budget := createTestSpecialBudget(suite.T(), v1.SpecialBudgetEditable{Name: "Japan trip", TotalBudget: decimal.NewFromInt(2500)})

	r := test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, map[string]any{
		"totalBudget": "3000",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.SpecialBudgetResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.TotalBudget.Equal(decimal.NewFromInt(3000)))
	assert.Equal(suite.T(), "Japan trip", updated.Data.Name)
}

// TestSpecialBudgetsDeleteCascades verifies that deleting a special
// budget also deletes its items.
func (suite *TestSuiteStandard) TestSpecialBudgetsDeleteCascades() {
	budget := createTestSpecialBudget(suite.T(), v1.SpecialBudgetEditable{Name: "Japan trip"})
	item := createTestSpecialBudgetItem(suite.T(), v1.SpecialBudgetItemEditable{SpecialBudgetID: budget.Data.ID, Name: "Flights"})

	r := test.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, item.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
