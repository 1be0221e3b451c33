package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wishweek/backend/internal/models"
	"github.com/wishweek/backend/internal/types"
)

type WeeklyBudgetEditable struct {
	Week   types.Week      `json:"week" example:"2022-W45"`                                                               // The ISO week this budget is for. Defaults to the current week.
	Amount decimal.Decimal `json:"amount" example:"250" minimum:"0.00000001" maximum:"999999999999.99999999" default:"0"` // The allowance for the week
	Note   string          `json:"note" example:"Reduced because of the vacation" default:""`                             // Note about the budget
}

// model returns the database resource for the API representation of the editable fields
func (editable WeeklyBudgetEditable) model() models.WeeklyBudget {
	return models.WeeklyBudget{
		Week:   editable.Week,
		Amount: editable.Amount,
		Note:   editable.Note,
	}
}

type WeeklyBudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The budget itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?week=2022-W45"`           // Transactions in the budget's week
}

type WeeklyBudget struct {
	models.DefaultModel
	WeeklyBudgetEditable
	Settled bool              `json:"settled" example:"true"` // True once the week has been settled into the pool
	Links   WeeklyBudgetLinks `json:"links"`
}

// newWeeklyBudget returns the API v1 representation of the resource
func newWeeklyBudget(c *gin.Context, model models.WeeklyBudget) WeeklyBudget {
	url := c.GetString(string(models.DBContextURL))

	return WeeklyBudget{
		DefaultModel: model.DefaultModel,
		WeeklyBudgetEditable: WeeklyBudgetEditable{
			Week:   model.Week,
			Amount: model.Amount,
			Note:   model.Note,
		},
		Settled: model.Settled,
		Links: WeeklyBudgetLinks{
			Self:         fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?week=%s", url, model.Week),
		},
	}
}

type WeeklyBudgetListResponse struct {
	Data       []WeeklyBudget `json:"data"`                                                          // List of resources
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type WeeklyBudgetCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []WeeklyBudgetResponse `json:"data"`                                                          // List of created resources
}

func (t *WeeklyBudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, WeeklyBudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type WeeklyBudgetResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *WeeklyBudget `json:"data"`                                                          // The resource
}

type WeeklyBudgetQueryFilter struct {
	Week    string `form:"week" filterField:"false"`   // By ISO week
	Note    string `form:"note" filterField:"false"`   // By the note
	Settled bool   `form:"settled"`                    // Is the budget settled?
	Offset  uint   `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit   int    `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f WeeklyBudgetQueryFilter) model() (models.WeeklyBudget, error) {
	var week types.Week
	if f.Week != "" {
		w, err := types.ParseWeek(f.Week)
		if err != nil {
			return models.WeeklyBudget{}, err
		}

		week = w
	}

	// The note is handled by the controller function
	return models.WeeklyBudget{
		Week:    week,
		Settled: f.Settled,
	}, nil
}

type SuggestedBudgetResponse struct {
	Error *string          `json:"error" example:"the monthly query parameter must be set"` // The error, if any occurred
	Data  *SuggestedBudget `json:"data"`                                                    // The suggestion
}

type SuggestedBudget struct {
	Monthly       decimal.Decimal `json:"monthly" example:"3000"`      // The monthly amount available
	FixedExpenses decimal.Decimal `json:"fixedExpenses" example:"800"` // The sum of all active fixed expenses
	Suggested     decimal.Decimal `json:"suggested" example:"550"`     // The suggested weekly budget
}
