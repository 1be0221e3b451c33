package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wishweek/backend/internal/models"
	ww_uuid "github.com/wishweek/backend/internal/uuid"
)

type SpecialBudgetItemEditable struct {
	SpecialBudgetID uuid.UUID       `json:"specialBudgetId" example:"0f0ff44c-9b0b-4e1e-b9ae-8c94a5e85e4a"`                                   // The ID of the special budget this item belongs to
	Name            string          `json:"name" example:"Hotel" default:""`                                                                  // Name of the item
	BudgetAmount    decimal.Decimal `json:"budgetAmount" example:"800" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"`   // The planned amount
	ActualAmount    decimal.Decimal `json:"actualAmount" example:"763.5" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount actually spent
}

// model returns the database resource for the API representation of the editable fields
func (editable SpecialBudgetItemEditable) model() models.SpecialBudgetItem {
	return models.SpecialBudgetItem{
		SpecialBudgetID: editable.SpecialBudgetID,
		Name:            editable.Name,
		BudgetAmount:    editable.BudgetAmount,
		ActualAmount:    editable.ActualAmount,
	}
}

type SpecialBudgetItemLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/special-budget-items/c7bcb4bc-93b4-4a58-a34e-e1ee7aa1e9e7"`     // The item itself
	SpecialBudget string `json:"specialBudget" example:"https://example.com/api/v1/special-budgets/0f0ff44c-9b0b-4e1e-b9ae-8c94a5e85e4a"` // The special budget this item belongs to
}

type SpecialBudgetItem struct {
	models.DefaultModel
	SpecialBudgetItemEditable
	Links SpecialBudgetItemLinks `json:"links"`
}

// newSpecialBudgetItem returns the API v1 representation of the resource
func newSpecialBudgetItem(c *gin.Context, model models.SpecialBudgetItem) SpecialBudgetItem {
	url := c.GetString(string(models.DBContextURL))

	return SpecialBudgetItem{
		DefaultModel: model.DefaultModel,
		SpecialBudgetItemEditable: SpecialBudgetItemEditable{
			SpecialBudgetID: model.SpecialBudgetID,
			Name:            model.Name,
			BudgetAmount:    model.BudgetAmount,
			ActualAmount:    model.ActualAmount,
		},
		Links: SpecialBudgetItemLinks{
			Self:          fmt.Sprintf("%s/v1/special-budget-items/%s", url, model.ID),
			SpecialBudget: fmt.Sprintf("%s/v1/special-budgets/%s", url, model.SpecialBudgetID),
		},
	}
}

type SpecialBudgetItemListResponse struct {
	Data       []SpecialBudgetItem `json:"data"`                                                          // List of resources
	Error      *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination         `json:"pagination"`                                                    // Pagination information
}

type SpecialBudgetItemCreateResponse struct {
	Error *string                     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SpecialBudgetItemResponse `json:"data"`                                                          // List of created resources
}

func (t *SpecialBudgetItemCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, SpecialBudgetItemResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SpecialBudgetItemResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *SpecialBudgetItem `json:"data"`                                                          // The resource
}

type SpecialBudgetItemQueryFilter struct {
	SpecialBudgetID ww_uuid.UUID `form:"specialBudget"`              // By special budget ID
	Name            string       `form:"name" filterField:"false"`   // By name
	Offset          uint         `form:"offset" filterField:"false"` // The offset of the first item returned. Defaults to 0.
	Limit           int          `form:"limit" filterField:"false"`  // Maximum number of items to return. Defaults to 50.
}

func (f SpecialBudgetItemQueryFilter) model() models.SpecialBudgetItem {
	// The name is handled by the controller function
	return models.SpecialBudgetItem{
		SpecialBudgetID: f.SpecialBudgetID.UUID,
	}
}
