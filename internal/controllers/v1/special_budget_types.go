package v1

import (
	"fmt"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wishweek/backend/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

type SpecialBudgetEditable struct {
	Name         string          `json:"name" example:"Japan trip" default:""`                                                           // Name of the special budget, must be unique
	Icon         string          `json:"icon" example:"airplane" default:""`                                                             // Icon identifier for the client
	TotalBudget  decimal.Decimal `json:"totalBudget" example:"2500" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The total amount planned
	PinnedToHome bool            `json:"pinnedToHome" example:"true" default:"false"`                                                    // Whether the budget is shown on the home screen
}

// model returns the database resource for the API representation of the editable fields
func (editable SpecialBudgetEditable) model() models.SpecialBudget {
	return models.SpecialBudget{
		Name:         editable.Name,
		Icon:         editable.Icon,
		TotalBudget:  editable.TotalBudget,
		PinnedToHome: editable.PinnedToHome,
	}
}

type SpecialBudgetLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/special-budgets/0f0ff44c-9b0b-4e1e-b9ae-8c94a5e85e4a"`                     // The special budget itself
	Items string `json:"items" example:"https://example.com/api/v1/special-budget-items?specialBudget=0f0ff44c-9b0b-4e1e-b9ae-8c94a5e85e4a"` // The items of this budget
}

type SpecialBudget struct {
	models.DefaultModel
	SpecialBudgetEditable
	Items      []SpecialBudgetItem `json:"items"`                       // The items of this budget
	PlannedSum decimal.Decimal     `json:"plannedSum" example:"2100"`   // Sum of the items' planned amounts
	ActualSum  decimal.Decimal     `json:"actualSum" example:"1800.40"` // Sum of the items' actual amounts
	Remaining  decimal.Decimal     `json:"remaining" example:"699.60"`  // totalBudget minus actualSum
	Links      SpecialBudgetLinks  `json:"links"`
}

// itemCollator orders item names with locale-aware, case-insensitive collation
var itemCollator = collate.New(language.Und, collate.Loose)

// newSpecialBudget returns the API v1 representation of the resource
// with its items and the computed sums.
func newSpecialBudget(c *gin.Context, db *gorm.DB, model models.SpecialBudget) (SpecialBudget, error) {
	url := c.GetString(string(models.DBContextURL))

	var items []models.SpecialBudgetItem
	err := db.Where(&models.SpecialBudgetItem{SpecialBudgetID: model.ID}).Find(&items).Error
	if err != nil {
		return SpecialBudget{}, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return itemCollator.CompareString(items[i].Name, items[j].Name) < 0
	})

	plannedSum, err := model.PlannedSum(db)
	if err != nil {
		return SpecialBudget{}, err
	}

	actualSum, err := model.ActualSum(db)
	if err != nil {
		return SpecialBudget{}, err
	}

	data := make([]SpecialBudgetItem, 0, len(items))
	for _, item := range items {
		data = append(data, newSpecialBudgetItem(c, item))
	}

	return SpecialBudget{
		DefaultModel: model.DefaultModel,
		SpecialBudgetEditable: SpecialBudgetEditable{
			Name:         model.Name,
			Icon:         model.Icon,
			TotalBudget:  model.TotalBudget,
			PinnedToHome: model.PinnedToHome,
		},
		Items:      data,
		PlannedSum: plannedSum,
		ActualSum:  actualSum,
		Remaining:  model.TotalBudget.Sub(actualSum),
		Links: SpecialBudgetLinks{
			Self:  fmt.Sprintf("%s/v1/special-budgets/%s", url, model.ID),
			Items: fmt.Sprintf("%s/v1/special-budget-items?specialBudget=%s", url, model.ID),
		},
	}, nil
}

type SpecialBudgetListResponse struct {
	Data       []SpecialBudget `json:"data"`                                                          // List of resources
	Error      *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                    // Pagination information
}

type SpecialBudgetCreateResponse struct {
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SpecialBudgetResponse `json:"data"`                                                          // List of created resources
}

func (t *SpecialBudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, SpecialBudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SpecialBudgetResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *SpecialBudget `json:"data"`                                                          // The resource
}

type SpecialBudgetQueryFilter struct {
	Name         string `form:"name" filterField:"false"`   // By name
	PinnedToHome bool   `form:"pinnedToHome"`               // Is the budget pinned to the home screen?
	Offset       uint   `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit        int    `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f SpecialBudgetQueryFilter) model() models.SpecialBudget {
	// The name is handled by the controller function
	return models.SpecialBudget{
		PinnedToHome: f.PinnedToHome,
	}
}
