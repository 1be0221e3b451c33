package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wishweek/backend/internal/models"
	"github.com/wishweek/backend/internal/types"
)

type TransactionEditable struct {
	Date   time.Time       `json:"date" example:"2022-11-11T14:43:27.899Z"`                                                            // Date of the transaction. Defaults to the creation time.
	Amount decimal.Decimal `json:"amount" example:"14.5" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount spent
	Note   string          `json:"note" example:"Groceries" default:""`                                                                // Note about the transaction
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:   editable.Date,
		Amount: editable.Amount,
		Note:   editable.Note,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Week  types.Week       `json:"week" example:"2022-W45"` // The ISO week the transaction counts toward
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:   model.Date,
			Amount: model.Amount,
			Note:   model.Note,
		},
		Week: model.Week,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of resources
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created resources
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The resource
}

type TransactionQueryFilter struct {
	Week              string          `form:"week" filterField:"false"`              // By ISO week
	Note              string          `form:"note" filterField:"false"`              // By the note
	FromDate          string          `form:"fromDate" filterField:"false"`          // Transactions at or after this RFC3339 timestamp
	UntilDate         string          `form:"untilDate" filterField:"false"`         // Transactions before or at this RFC3339 timestamp
	Amount            decimal.Decimal `form:"amount"`                                // Exact amount
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Offset            uint            `form:"offset" filterField:"false"`            // The offset of the first transaction returned. Defaults to 0.
	Limit             int             `form:"limit" filterField:"false"`             // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() (models.Transaction, error) {
	var week types.Week
	if f.Week != "" {
		w, err := types.ParseWeek(f.Week)
		if err != nil {
			return models.Transaction{}, err
		}

		week = w
	}

	// The note is handled by the controller function
	return models.Transaction{
		Week:   week,
		Amount: f.Amount,
	}, nil
}
