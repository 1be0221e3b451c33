package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wishweek/backend/internal/models"
)

type FixedExpenseEditable struct {
	Name       string          `json:"name" example:"Rent" default:""`                                                           // Name of the fixed expense
	Amount     decimal.Decimal `json:"amount" example:"450" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The monthly amount
	ExpireDate *time.Time      `json:"expireDate" example:"2023-06-30T00:00:00Z"`                                                // After this date the expense no longer counts, null means it never expires
	Enabled    bool            `json:"enabled" example:"true" default:"false"`                                                   // Whether the expense counts toward the suggested budget
}

// model returns the database resource for the API representation of the editable fields
func (editable FixedExpenseEditable) model() models.FixedExpense {
	return models.FixedExpense{
		Name:       editable.Name,
		Amount:     editable.Amount,
		ExpireDate: editable.ExpireDate,
		Enabled:    editable.Enabled,
	}
}

type FixedExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/fixed-expenses/9cf9467b-40d9-420a-b474-32f56eff5199"` // The fixed expense itself
}

type FixedExpense struct {
	models.DefaultModel
	FixedExpenseEditable
	Active bool              `json:"active" example:"true"` // True when the expense is enabled and not expired
	Links  FixedExpenseLinks `json:"links"`
}

// newFixedExpense returns the API v1 representation of the resource
func newFixedExpense(c *gin.Context, model models.FixedExpense) FixedExpense {
	url := c.GetString(string(models.DBContextURL))

	return FixedExpense{
		DefaultModel: model.DefaultModel,
		FixedExpenseEditable: FixedExpenseEditable{
			Name:       model.Name,
			Amount:     model.Amount,
			ExpireDate: model.ExpireDate,
			Enabled:    model.Enabled,
		},
		Active: model.Active(time.Now()),
		Links: FixedExpenseLinks{
			Self: fmt.Sprintf("%s/v1/fixed-expenses/%s", url, model.ID),
		},
	}
}

type FixedExpenseListResponse struct {
	Data       []FixedExpense `json:"data"`                                                          // List of resources
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type FixedExpenseCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []FixedExpenseResponse `json:"data"`                                                          // List of created resources
}

func (t *FixedExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, FixedExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type FixedExpenseResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *FixedExpense `json:"data"`                                                          // The resource
}

type FixedExpenseQueryFilter struct {
	Name    string `form:"name" filterField:"false"`   // By name
	Enabled bool   `form:"enabled"`                    // Is the expense enabled?
	Offset  uint   `form:"offset" filterField:"false"` // The offset of the first expense returned. Defaults to 0.
	Limit   int    `form:"limit" filterField:"false"`  // Maximum number of expenses to return. Defaults to 50.
}

func (f FixedExpenseQueryFilter) model() models.FixedExpense {
	// The name is handled by the controller function
	return models.FixedExpense{
		Enabled: f.Enabled,
	}
}
