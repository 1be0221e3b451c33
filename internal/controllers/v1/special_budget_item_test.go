package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v1 "github.com/wishweek/backend/internal/controllers/v1"
	"github.com/wishweek/backend/test"
)

func createTestSpecialBudgetItem(t *testing.T, e v1.SpecialBudgetItemEditable, expectedStatus ...int) v1.SpecialBudgetItemResponse {
	if e.Name == "" {
		e.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.SpecialBudgetItemEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/special-budget-items", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var item v1.SpecialBudgetItemCreateResponse
	test.DecodeResponse(t, &r, &item)

	if r.Code == http.StatusCreated {
		return item.Data[0]
	}

	return v1.SpecialBudgetItemResponse{}
}

// TestSpecialBudgetItemsCreateNoParent verifies that items cannot
// reference a special budget that does not exist.
func (suite *TestSuiteStandard) TestSpecialBudgetItemsCreateNoParent() {
	_ = createTestSpecialBudgetItem(suite.T(), v1.SpecialBudgetItemEditable{SpecialBudgetID: uuid.New(), Name: "Orphan"}, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSpecialBudgetItemsGetFilter() {
	japan := createTestSpecialBudget(suite.T(), v1.SpecialBudgetEditable{Name: "Japan trip"})
	christmas := createTestSpecialBudget(suite.T(), v1.SpecialBudgetEditable{Name: "Christmas presents"})

	_ = createTestSpecialBudgetItem(suite.T(), v1.SpecialBudgetItemEditable{SpecialBudgetID: japan.Data.ID, Name: "Flights"})
	_ = createTestSpecialBudgetItem(suite.T(), v1.SpecialBudgetItemEditable{SpecialBudgetID: japan.Data.ID, Name: "Hotel"})
	_ = createTestSpecialBudgetItem(suite.T(), v1.SpecialBudgetItemEditable{SpecialBudgetID: christmas.Data.ID, Name: "Lego for the kids"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Special budget", fmt.Sprintf("specialBudget=%s", japan.Data.ID), 2},
		{"Other special budget", fmt.Sprintf("specialBudget=%s", christmas.Data.ID), 1},
		{"Name", "name=Hotel", 1},
		{"Name and special budget", fmt.Sprintf("name=Flights&specialBudget=%s", japan.Data.ID), 1},
		{"All", "", 3},
		{"Limit", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/special-budget-items?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SpecialBudgetItemListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data), "Request: %s", tt.query)
		})
	}
}

func (suite *TestSuiteStandard) TestSpecialBudgetItemsUpdate() {
	budget := createTestSpecialBudget(suite.T(), v1.SpecialBudgetEditable{Name: "Japan trip"})
	item := createTestSpecialBudgetItem(suite.T(), v1.SpecialBudgetItemEditable{SpecialBudgetID: budget.Data.ID, Name: "Flights", BudgetAmount: decimal.NewFromInt(800)})

	r := test.Request(suite.T(), http.MethodPatch, item.Data.Links.Self, map[string]any{
		"actualAmount": "763.5",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.SpecialBudgetItemResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.ActualAmount.Equal(decimal.NewFromFloat(763.5)))
	assert.True(suite.T(), updated.Data.BudgetAmount.Equal(decimal.NewFromInt(800)))

	// Moving the item to a budget that does not exist fails
	r = test.Request(suite.T(), http.MethodPatch, item.Data.Links.Self, map[string]any{
		"specialBudgetId": uuid.New(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSpecialBudgetItemsDelete() {
	budget := createTestSpecialBudget(suite.T(), v1.SpecialBudgetEditable{Name: "Japan trip"})
	item := createTestSpecialBudgetItem(suite.T(), v1.SpecialBudgetItemEditable{SpecialBudgetID: budget.Data.ID, Name: "Flights"})

	r := test.Request(suite.T(), http.MethodDelete, item.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, item.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
