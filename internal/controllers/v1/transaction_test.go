package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/wishweek/backend/internal/controllers/v1"
	"github.com/wishweek/backend/internal/types"
	"github.com/wishweek/backend/test"
)

func createTestTransaction(t *testing.T, e v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if e.Amount.IsZero() {
		e.Amount = decimal.NewFromFloat(17.23)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.TransactionEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var tr v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &tr)

	if r.Code == http.StatusCreated {
		return tr.Data[0]
	}

	return v1.TransactionResponse{}
}

// TestTransactionsWeekDerived verifies that the week of a transaction
// always follows its date.
func (suite *TestSuiteStandard) TestTransactionsWeekDerived() {
	date := time.Date(2023, 3, 8, 12, 0, 0, 0, time.UTC)
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{Date: date})

	assert.True(suite.T(), tr.Data.Week.Equal(types.WeekOf(date)), "Week is %s, expected 2023-W10", tr.Data.Week)

	// Moving the date via PATCH moves the transaction to the new week
	newDate := time.Date(2023, 3, 15, 12, 0, 0, 0, time.UTC)
	r := test.Request(suite.T(), http.MethodPatch, tr.Data.Links.Self, map[string]any{
		"date": newDate,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Week.Equal(types.WeekOf(newDate)), "Week is %s, expected 2023-W11", updated.Data.Week)

	// The stored row reflects the new date and week
	r = test.Request(suite.T(), http.MethodGet, tr.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Date.Equal(newDate), "Date is %s, expected %s", updated.Data.Date, newDate)
	assert.True(suite.T(), updated.Data.Week.Equal(types.WeekOf(newDate)), "stored week is %s, expected 2023-W11", updated.Data.Week)

	// The transaction now counts towards the new week only
	var list v1.TransactionListResponse
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?week=2023-W11", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 1)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?week=2023-W10", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 0)
}

// TestTransactionsDateDefaults verifies that a transaction without a date
// defaults to the current time.
func (suite *TestSuiteStandard) TestTransactionsDateDefaults() {
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(3)})

	assert.WithinDuration(suite.T(), time.Now(), tr.Data.Date, time.Minute)
	assert.True(suite.T(), tr.Data.Week.Equal(types.WeekOf(time.Now())))
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken body", `{ "note": 2 }`, http.StatusBadRequest},
		{"No body", "", http.StatusBadRequest},
		{"Zero amount", []v1.TransactionEditable{{Amount: decimal.Zero}}, http.StatusBadRequest},
		{"Negative amount", []v1.TransactionEditable{{Amount: decimal.NewFromInt(-7)}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{Note: "Ice cream"})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing transaction", tr.Data.ID.String(), http.StatusOK},
		{"No transaction with this ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid UUID", "definitely-not-a-UUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Date: time.Date(2023, 3, 6, 8, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(10), Note: "Lunch"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Date: time.Date(2023, 3, 9, 18, 0, 0, 0, time.UTC), Amount: decimal.NewFromFloat(2.5), Note: "Coffee"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Date: time.Date(2023, 3, 14, 12, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(10), Note: "Lunch again"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Week", "week=2023-W10", 2},
		{"Other week", "week=2023-W11", 1},
		{"Empty week", "week=2023-W30", 0},
		{"Note", "note=Lunch", 2},
		{"Amount", "amount=10", 2},
		{"Amount less or equal", "amountLessOrEqual=5", 1},
		{"Amount more or equal", "amountMoreOrEqual=10", 2},
		{"From date", "fromDate=2023-03-09T00:00:00Z", 2},
		{"Until date", "untilDate=2023-03-09T23:59:59Z", 2},
		{"Date range", "fromDate=2023-03-07T00:00:00Z&untilDate=2023-03-10T00:00:00Z", 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data), "Request: %s", tt.query)
		})
	}
}

// TestTransactionsSorted verifies that transactions are returned with the
// most recent date first.
func (suite *TestSuiteStandard) TestTransactionsSorted() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Date: time.Date(2023, 3, 6, 8, 0, 0, 0, time.UTC), Note: "Oldest"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Date: time.Date(2023, 3, 14, 12, 0, 0, 0, time.UTC), Note: "Newest"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Date: time.Date(2023, 3, 9, 18, 0, 0, 0, time.UTC), Note: "Middle"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)

	assert.Equal(suite.T(), "Newest", response.Data[0].Note)
	assert.Equal(suite.T(), "Middle", response.Data[1].Note)
	assert.Equal(suite.T(), "Oldest", response.Data[2].Note)
}

func (suite *TestSuiteStandard) TestTransactionsInvalidDateFilter() {
	tests := []string{
		"fromDate=2023-03-09",
		"untilDate=today",
	}

	for _, query := range tests {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{})

	r := test.Request(suite.T(), http.MethodDelete, tr.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, tr.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
