package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishweek/backend/internal/httputil"
	"github.com/wishweek/backend/internal/models"
	"golang.org/x/exp/slices"
)

func RegisterSpecialBudgetItemRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSpecialBudgetItems)
		r.GET("", GetSpecialBudgetItems)
		r.POST("", CreateSpecialBudgetItems)
	}
	{
		r.OPTIONS("/:id", OptionsSpecialBudgetItemDetail)
		r.GET("/:id", GetSpecialBudgetItem)
		r.PATCH("/:id", UpdateSpecialBudgetItem)
		r.DELETE("/:id", DeleteSpecialBudgetItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SpecialBudgets
// @Success		204
// @Router			/v1/special-budget-items [options]
func OptionsSpecialBudgetItems(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SpecialBudgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/special-budget-items/{id} [options]
func OptionsSpecialBudgetItemDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.SpecialBudgetItem{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create special budget items
// @Description	Creates new special budget items
// @Tags			SpecialBudgets
// @Produce		json
// @Success		201		{object}	SpecialBudgetItemCreateResponse
// @Failure		400		{object}	SpecialBudgetItemCreateResponse
// @Failure		404		{object}	SpecialBudgetItemCreateResponse
// @Failure		500		{object}	SpecialBudgetItemCreateResponse
// @Param			items	body		[]SpecialBudgetItemEditable	true	"Special budget items"
// @Router			/v1/special-budget-items [post]
func CreateSpecialBudgetItems(c *gin.Context) {
	var editables []SpecialBudgetItemEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetItemCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SpecialBudgetItemCreateResponse{}

	for _, editable := range editables {
		item := editable.model()
		err = models.DB.Create(&item).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newSpecialBudgetItem(c, item)
		r.Data = append(r.Data, SpecialBudgetItemResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get special budget items
// @Description	Returns a list of special budget items
// @Tags			SpecialBudgets
// @Produce		json
// @Success		200	{object}	SpecialBudgetItemListResponse
// @Failure		400	{object}	SpecialBudgetItemListResponse
// @Failure		500	{object}	SpecialBudgetItemListResponse
// @Router			/v1/special-budget-items [get]
// @Param			specialBudget	query	string	false	"Filter by special budget ID"
// @Param			name			query	string	false	"Filter by name"
// @Param			offset			query	uint	false	"The offset of the first item returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of items to return. Defaults to 50."
func GetSpecialBudgetItems(c *gin.Context) {
	var filter SpecialBudgetItemQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SpecialBudgetItemListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()

	q := models.DB.
		Order("special_budget_items.name ASC").
		Where(&where, queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 items and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var items []models.SpecialBudgetItem
	err := q.Find(&items).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SpecialBudgetItemListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetItemListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]SpecialBudgetItem, 0, len(items))
	for _, item := range items {
		data = append(data, newSpecialBudgetItem(c, item))
	}

	c.JSON(http.StatusOK, SpecialBudgetItemListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get special budget item
// @Description	Returns a specific special budget item
// @Tags			SpecialBudgets
// @Produce		json
// @Success		200	{object}	SpecialBudgetItemResponse
// @Failure		400	{object}	SpecialBudgetItemResponse
// @Failure		404	{object}	SpecialBudgetItemResponse
// @Failure		500	{object}	SpecialBudgetItemResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/special-budget-items/{id} [get]
func GetSpecialBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetItemResponse{
			Error: &e,
		})
		return
	}

	var item models.SpecialBudgetItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetItemResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSpecialBudgetItem(c, item)
	c.JSON(http.StatusOK, SpecialBudgetItemResponse{Data: &apiResource})
}

// @Summary		Update special budget item
// @Description	Updates an existing special budget item. Only values to be updated need to be specified.
// @Tags			SpecialBudgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	SpecialBudgetItemResponse
// @Failure		400		{object}	SpecialBudgetItemResponse
// @Failure		404		{object}	SpecialBudgetItemResponse
// @Failure		500		{object}	SpecialBudgetItemResponse
// @Param			id		path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			item	body		SpecialBudgetItemEditable	true	"Special budget item"
// @Router			/v1/special-budget-items/{id} [patch]
func UpdateSpecialBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetItemResponse{
			Error: &e,
		})
		return
	}

	var item models.SpecialBudgetItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetItemResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, SpecialBudgetItemEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetItemResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data SpecialBudgetItemEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetItemResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&item).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetItemResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSpecialBudgetItem(c, item)
	c.JSON(http.StatusOK, SpecialBudgetItemResponse{Data: &apiResource})
}

// @Summary		Delete special budget item
// @Description	Deletes a special budget item
// @Tags			SpecialBudgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/special-budget-items/{id} [delete]
func DeleteSpecialBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var item models.SpecialBudgetItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&item).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
