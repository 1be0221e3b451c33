package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wishweek/backend/internal/models"
	"github.com/wishweek/backend/internal/types"
	ww_uuid "github.com/wishweek/backend/internal/uuid"
)

type PoolLinks struct {
	Entries     string `json:"entries" example:"https://example.com/api/v1/pool/entries"`         // The pool ledger
	Settlements string `json:"settlements" example:"https://example.com/api/v1/pool/settlements"` // Settlement endpoint
}

type Pool struct {
	Balance decimal.Decimal `json:"balance" example:"1337.42"` // The current pool balance
	Links   PoolLinks       `json:"links"`
}

type PoolResponse struct {
	Error *string `json:"error" example:"there is no pool entry matching your query"` // The error, if any occurred
	Data  *Pool   `json:"data"`                                                       // The resource
}

type PoolEntryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/pool/entries/daf8e9a4-4fe0-45cd-a32a-3a7d2b92ba70"` // The pool entry itself
	Wish string `json:"wish" example:"https://example.com/api/v1/wishes/5eeb6107-9f19-4096-b722-cbaaa5f2397e"`       // The wish this entry pays for, if any
}

type PoolEntry struct {
	models.DefaultModel
	Week         *types.Week     `json:"week" example:"2022-W45"`     // The settled week for credit entries, null for wish deductions
	BudgetAmount decimal.Decimal `json:"budgetAmount" example:"250"`  // The budget of the settled week
	SpentAmount  decimal.Decimal `json:"spentAmount" example:"180.5"` // The amount spent in the settled week
	SavedAmount  decimal.Decimal `json:"savedAmount" example:"69.5"`  // The amount this entry adds to the pool, negative for deductions
	Deduction    bool            `json:"deduction" example:"false"`   // True for wish deduction entries
	WishName     string          `json:"wishName" example:"New bike"` // Name of the wish at fulfillment time
	Links        PoolEntryLinks  `json:"links"`
}

// newPoolEntry returns the API v1 representation of the resource
func newPoolEntry(c *gin.Context, model models.PoolEntry) PoolEntry {
	url := c.GetString(string(models.DBContextURL))

	entry := PoolEntry{
		DefaultModel: model.DefaultModel,
		Week:         model.Week,
		BudgetAmount: model.BudgetAmount,
		SpentAmount:  model.SpentAmount,
		SavedAmount:  model.SavedAmount,
		Deduction:    model.Deduction,
		WishName:     model.WishName,
		Links: PoolEntryLinks{
			Self: fmt.Sprintf("%s/v1/pool/entries/%s", url, model.ID),
		},
	}

	if model.WishID != nil {
		entry.Links.Wish = fmt.Sprintf("%s/v1/wishes/%s", url, model.WishID)
	}

	return entry
}

type PoolEntryListResponse struct {
	Data       []PoolEntry `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PoolEntryResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *PoolEntry `json:"data"`                                                          // The resource
}

type PoolEntryQueryFilter struct {
	Week      string       `form:"week" filterField:"false"`   // By the settled ISO week
	Deduction bool         `form:"deduction"`                  // Only deduction or only credit entries
	WishID    ww_uuid.UUID `form:"wish"`                       // By wish ID
	Offset    uint         `form:"offset" filterField:"false"` // The offset of the first entry returned. Defaults to 0.
	Limit     int          `form:"limit" filterField:"false"`  // Maximum number of entries to return. Defaults to 50.
}

func (f PoolEntryQueryFilter) model() (models.PoolEntry, error) {
	var week *types.Week
	if f.Week != "" {
		w, err := types.ParseWeek(f.Week)
		if err != nil {
			return models.PoolEntry{}, err
		}

		week = &w
	}

	entry := models.PoolEntry{
		Week:      week,
		Deduction: f.Deduction,
	}

	if f.WishID != ww_uuid.Nil {
		id := f.WishID.UUID
		entry.WishID = &id
	}

	return entry, nil
}

type SettlementEditable struct {
	Week string `json:"week" example:"2022-W45" default:""` // The ISO week to settle. Defaults to the week before the current one.
}

type Settlement struct {
	Week         types.Week      `json:"week" example:"2022-W45"`     // The week
	BudgetAmount decimal.Decimal `json:"budgetAmount" example:"250"`  // The budget of the week
	SpentAmount  decimal.Decimal `json:"spentAmount" example:"180.5"` // The amount spent in the week
	SavedAmount  decimal.Decimal `json:"savedAmount" example:"69.5"`  // budget minus spent
	BudgetSet    bool            `json:"budgetSet" example:"true"`    // False when no budget was ever set for the week
	Settled      bool            `json:"settled" example:"false"`     // True once the week has been settled
}

// newSettlement returns the API v1 representation of the computation
func newSettlement(model models.Settlement) Settlement {
	return Settlement{
		Week:         model.Week,
		BudgetAmount: model.BudgetAmount,
		SpentAmount:  model.SpentAmount,
		SavedAmount:  model.SavedAmount,
		BudgetSet:    model.BudgetSet,
		Settled:      model.Settled,
	}
}

type SettlementResponse struct {
	Error *string     `json:"error" example:"this week has already been settled"` // The error, if any occurred
	Data  *Settlement `json:"data"`                                               // The resource
}
