package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wishweek/backend/internal/models"
)

type WishEditable struct {
	Name     string          `json:"name" example:"New bike" default:""`                                                                // Name of the wish
	Note     string          `json:"note" example:"The red one from the store downtown" default:""`                                     // Note about the wish
	Amount   decimal.Decimal `json:"amount" example:"750" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // How much money the wish costs
	ImageURL string          `json:"imageUrl" example:"https://images.example.com/bike.png" default:""`                                 // Picture of the wish
}

// model returns the database resource for the API representation of the editable fields
func (editable WishEditable) model() models.Wish {
	return models.Wish{
		Name:     editable.Name,
		Note:     editable.Note,
		Amount:   editable.Amount,
		ImageURL: editable.ImageURL,
	}
}

type WishLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/wishes/5eeb6107-9f19-4096-b722-cbaaa5f2397e"`            // The wish itself
	Fulfill string `json:"fulfill" example:"https://example.com/api/v1/wishes/5eeb6107-9f19-4096-b722-cbaaa5f2397e/fulfill"` // Endpoint to fulfill the wish from the pool
	Revoke  string `json:"revoke" example:"https://example.com/api/v1/wishes/5eeb6107-9f19-4096-b722-cbaaa5f2397e/revoke"`   // Endpoint to revoke the fulfillment
}

type Wish struct {
	models.DefaultModel
	WishEditable
	Fulfilled bool      `json:"fulfilled" example:"false"` // True once the wish has been paid out of the pool
	Links     WishLinks `json:"links"`
}

// newWish returns the API v1 representation of the resource
func newWish(c *gin.Context, model models.Wish) Wish {
	url := c.GetString(string(models.DBContextURL))

	return Wish{
		DefaultModel: model.DefaultModel,
		WishEditable: WishEditable{
			Name:     model.Name,
			Note:     model.Note,
			Amount:   model.Amount,
			ImageURL: model.ImageURL,
		},
		Fulfilled: model.Fulfilled,
		Links: WishLinks{
			Self:    fmt.Sprintf("%s/v1/wishes/%s", url, model.ID),
			Fulfill: fmt.Sprintf("%s/v1/wishes/%s/fulfill", url, model.ID),
			Revoke:  fmt.Sprintf("%s/v1/wishes/%s/revoke", url, model.ID),
		},
	}
}

type WishListResponse struct {
	Data       []Wish      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type WishCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []WishResponse `json:"data"`                                                          // List of created resources
}

func (t *WishCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, WishResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type WishResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Wish   `json:"data"`                                                          // The resource
}

type WishQueryFilter struct {
	Name      string          `form:"name" filterField:"false"`   // By name, glob patterns are supported
	Note      string          `form:"note" filterField:"false"`   // By the note
	Search    string          `form:"search" filterField:"false"` // By string in name or note
	Fulfilled bool            `form:"fulfilled"`                  // Is the wish fulfilled?
	Amount    decimal.Decimal `form:"amount"`                     // Exact amount
	Offset    uint            `form:"offset" filterField:"false"` // The offset of the first wish returned. Defaults to 0.
	Limit     int             `form:"limit" filterField:"false"`  // Maximum number of wishes to return. Defaults to 50.
}

func (f WishQueryFilter) model() models.Wish {
	// The name is matched in memory to support glob patterns,
	// the note and search strings are handled by the controller function
	return models.Wish{
		Fulfilled: f.Fulfilled,
		Amount:    f.Amount,
	}
}
