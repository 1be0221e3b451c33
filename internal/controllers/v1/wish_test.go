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
	"github.com/wishweek/backend/internal/types"
	"github.com/wishweek/backend/test"
)

func createTestWish(t *testing.T, e v1.WishEditable, expectedStatus ...int) v1.WishResponse {
	if e.Amount.IsZero() {
		e.Amount = decimal.NewFromFloat(99.99)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.WishEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/wishes", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var wish v1.WishCreateResponse
	test.DecodeResponse(t, &r, &wish)

	if r.Code == http.StatusCreated {
		return wish.Data[0]
	}

	return v1.WishResponse{}
}

func (suite *TestSuiteStandard) TestWishesOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No wish with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Wish exists", createTestWish(suite.T(), v1.WishEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/wishes", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestWishesCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Broken body", `{ "name": 2 }`},
		{"No body", ""},
		{"Zero amount", []v1.WishEditable{{Name: "Free lunch", Amount: decimal.Zero}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/wishes", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestWishesGetFilter verifies the list filters, including glob
// patterns in the name filter.
func (suite *TestSuiteStandard) TestWishesGetFilter() {
	_ = createTestWish(suite.T(), v1.WishEditable{Name: "New bike", Note: "The red one", Amount: decimal.NewFromInt(750)})
	_ = createTestWish(suite.T(), v1.WishEditable{Name: "Bike helmet", Amount: decimal.NewFromInt(60)})
	fulfillable := createTestWish(suite.T(), v1.WishEditable{Name: "Concert tickets", Note: "Red hot chili peppers", Amount: decimal.NewFromInt(120)})

	// Fund the pool and fulfill one wish so the fulfilled filter has
	// something to find
	_ = createTestBudget(suite.T(), v1.WeeklyBudgetEditable{Week: types.NewWeek(2020, 10), Amount: decimal.NewFromInt(500)})
	settleTestWeek(suite.T(), "2020-W10")

	r := test.Request(suite.T(), http.MethodPost, fulfillable.Data.Links.Fulfill, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Name exact", "name=New+bike", 1},
		{"Name glob", "name=*bike*", 2},
		{"Name glob prefix", "name=bike*", 1},
		{"Name glob no match", "name=pony*", 0},
		{"Note", "note=red", 2},
		{"Empty note", "note=", 1},
		{"Search matches name and note", "search=red", 2},
		{"Search matches name", "search=bike", 2},
		{"Fulfilled", "fulfilled=true", 1},
		{"Unfulfilled", "fulfilled=false", 2},
		{"Amount", "amount=60", 1},
		{"Glob with limit", "name=*bike*&limit=1", 1},
		{"Glob with offset", "name=*bike*&offset=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/wishes?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.WishListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data), "Request: %s", tt.query)
		})
	}
}

// TestWishesGlobPagination verifies that pagination totals refer to the
// glob matched set, not the whole table.
func (suite *TestSuiteStandard) TestWishesGlobPagination() {
	_ = createTestWish(suite.T(), v1.WishEditable{Name: "New bike"})
	_ = createTestWish(suite.T(), v1.WishEditable{Name: "Bike helmet"})
	_ = createTestWish(suite.T(), v1.WishEditable{Name: "Concert tickets"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/wishes?name=*bike*&limit=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WishListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), int64(2), response.Pagination.Total)
	assert.Equal(suite.T(), 1, response.Pagination.Count)
}

// TestWishesFulfillRevoke walks through the full lifecycle of paying
// for a wish out of the pool and undoing it again.
func (suite *TestSuiteStandard) TestWishesFulfillRevoke() {
	// Settle a past week with a budget of 800 and no spending to fund
	// the pool
	_ = createTestBudget(suite.T(), v1.WeeklyBudgetEditable{Week: types.NewWeek(2020, 10), Amount: decimal.NewFromInt(800)})
	settleTestWeek(suite.T(), "2020-W10")

	wish := createTestWish(suite.T(), v1.WishEditable{Name: "New bike", Amount: decimal.NewFromInt(500)})

	// Fulfill the wish
	r := test.Request(suite.T(), http.MethodPost, wish.Data.Links.Fulfill, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var entry v1.PoolEntryResponse
	test.DecodeResponse(suite.T(), &r, &entry)
	require.NotNil(suite.T(), entry.Data)
	assert.True(suite.T(), entry.Data.Deduction)
	assert.True(suite.T(), entry.Data.SavedAmount.Equal(decimal.NewFromInt(-500)), "Deduction is %s, expected -500", entry.Data.SavedAmount)
	assert.Equal(suite.T(), "New bike", entry.Data.WishName)
	assert.Nil(suite.T(), entry.Data.Week)
	assert.Equal(suite.T(), wish.Data.Links.Self, entry.Data.Links.Wish)

	assertPoolBalance(suite.T(), decimal.NewFromInt(300))

	// A second fulfillment fails
	r = test.Request(suite.T(), http.MethodPost, wish.Data.Links.Fulfill, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// The remaining balance does not cover another expensive wish
	tooExpensive := createTestWish(suite.T(), v1.WishEditable{Name: "Gaming PC", Amount: decimal.NewFromInt(301)})
	r = test.Request(suite.T(), http.MethodPost, tooExpensive.Data.Links.Fulfill, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assertPoolBalance(suite.T(), decimal.NewFromInt(300))

	// Revoking restores the balance and the wish state
	r = test.Request(suite.T(), http.MethodPost, wish.Data.Links.Revoke, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var revoked v1.WishResponse
	test.DecodeResponse(suite.T(), &r, &revoked)
	require.NotNil(suite.T(), revoked.Data)
	assert.False(suite.T(), revoked.Data.Fulfilled)

	assertPoolBalance(suite.T(), decimal.NewFromInt(800))

	// Revoking an unfulfilled wish fails
	r = test.Request(suite.T(), http.MethodPost, wish.Data.Links.Revoke, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestWishesUpdateDelete() {
	wish := createTestWish(suite.T(), v1.WishEditable{Name: "New bike", Amount: decimal.NewFromInt(750)})

	r := test.Request(suite.T(), http.MethodPatch, wish.Data.Links.Self, map[string]any{
		"note": "The blue one instead",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.WishResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "The blue one instead", updated.Data.Note)
	assert.Equal(suite.T(), "New bike", updated.Data.Name)

	r = test.Request(suite.T(), http.MethodDelete, wish.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, wish.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
