package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v1 "github.com/wishweek/backend/internal/controllers/v1"
	"github.com/wishweek/backend/test"
)

func createTestFixedExpense(t *testing.T, e v1.FixedExpenseEditable, expectedStatus ...int) v1.FixedExpenseResponse {
	if e.Name == "" {
		e.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.FixedExpenseEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/fixed-expenses", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var expense v1.FixedExpenseCreateResponse
	test.DecodeResponse(t, &r, &expense)

	if r.Code == http.StatusCreated {
		return expense.Data[0]
	}

	return v1.FixedExpenseResponse{}
}

// TestFixedExpensesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestFixedExpensesOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No expense with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Expense exists", createTestFixedExpense(suite.T(), v1.FixedExpenseEditable{Amount: decimal.NewFromInt(450)}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/fixed-expenses", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestFixedExpensesActive verifies that the active flag in responses follows
// the enabled flag and the expire date.
func (suite *TestSuiteStandard) TestFixedExpensesActive() {
	past := time.Now().AddDate(0, -1, 0)
	future := time.Now().AddDate(0, 1, 0)

	tests := []struct {
		name    string
		expense v1.FixedExpenseEditable
		active  bool
	}{
		{"Enabled without expiry", v1.FixedExpenseEditable{Enabled: true}, true},
		{"Enabled with future expiry", v1.FixedExpenseEditable{Enabled: true, ExpireDate: &future}, true},
		{"Enabled but expired", v1.FixedExpenseEditable{Enabled: true, ExpireDate: &past}, false},
		{"Disabled", v1.FixedExpenseEditable{Enabled: false}, false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			e := createTestFixedExpense(t, tt.expense)
			assert.Equal(t, tt.active, e.Data.Active)
		})
	}
}

func (suite *TestSuiteStandard) TestFixedExpensesGetFilter() {
	_ = createTestFixedExpense(suite.T(), v1.FixedExpenseEditable{Name: "Rent", Amount: decimal.NewFromInt(500), Enabled: true})
	_ = createTestFixedExpense(suite.T(), v1.FixedExpenseEditable{Name: "Rental insurance", Amount: decimal.NewFromInt(30), Enabled: true})
	_ = createTestFixedExpense(suite.T(), v1.FixedExpenseEditable{Name: "Old gym", Amount: decimal.NewFromInt(100), Enabled: false})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Name", "name=Rent", 2},
		{"Exact name", "name=Old+gym", 1},
		{"Enabled", "enabled=true", 2},
		{"Disabled", "enabled=false", 1},
		{"Limit", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/fixed-expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.FixedExpenseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data), "Request: %s", tt.query)
		})
	}
}

func (suite *TestSuiteStandard) TestFixedExpensesUpdateDelete() {
	e := createTestFixedExpense(suite.T(), v1.FixedExpenseEditable{Name: "Gym", Amount: decimal.NewFromInt(45), Enabled: true})

	r := test.Request(suite.T(), http.MethodPatch, e.Data.Links.Self, map[string]any{
		"enabled": false,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.FixedExpenseResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.False(suite.T(), updated.Data.Enabled)
	assert.Equal(suite.T(), "Gym", updated.Data.Name)

	r = test.Request(suite.T(), http.MethodDelete, e.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, e.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
