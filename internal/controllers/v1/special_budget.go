package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishweek/backend/internal/httputil"
	"github.com/wishweek/backend/internal/models"
	"golang.org/x/exp/slices"
)

func RegisterSpecialBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSpecialBudgets)
		r.GET("", GetSpecialBudgets)
		r.POST("", CreateSpecialBudgets)
	}
	{
		r.OPTIONS("/:id", OptionsSpecialBudgetDetail)
		r.GET("/:id", GetSpecialBudget)
		r.PATCH("/:id", UpdateSpecialBudget)
		r.DELETE("/:id", DeleteSpecialBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SpecialBudgets
// @Success		204
// @Router			/v1/special-budgets [options]
func OptionsSpecialBudgets(c *gin.Context) {
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
// @Router			/v1/special-budgets/{id} [options]
func OptionsSpecialBudgetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.SpecialBudget{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create special budgets
// @Description	Creates new special budgets
// @Tags			SpecialBudgets
// @Produce		json
// @Success		201		{object}	SpecialBudgetCreateResponse
// @Failure		400		{object}	SpecialBudgetCreateResponse
// @Failure		500		{object}	SpecialBudgetCreateResponse
// @Param			budgets	body		[]SpecialBudgetEditable	true	"Special budgets"
// @Router			/v1/special-budgets [post]
func CreateSpecialBudgets(c *gin.Context) {
	var editables []SpecialBudgetEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SpecialBudgetCreateResponse{}

	for _, editable := range editables {
		budget := editable.model()
		err = models.DB.Create(&budget).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource, err := newSpecialBudget(c, models.DB, budget)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}
		r.Data = append(r.Data, SpecialBudgetResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get special budgets
// @Description	Returns a list of special budgets with their items
// @Tags			SpecialBudgets
// @Produce		json
// @Success		200	{object}	SpecialBudgetListResponse
// @Failure		400	{object}	SpecialBudgetListResponse
// @Failure		500	{object}	SpecialBudgetListResponse
// @Router			/v1/special-budgets [get]
// @Param			name			query	string	false	"Filter by name"
// @Param			pinnedToHome	query	bool	false	"Is the budget pinned to the home screen?"
// @Param			offset			query	uint	false	"The offset of the first budget returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of budgets to return. Defaults to 50."
func GetSpecialBudgets(c *gin.Context) {
	var filter SpecialBudgetQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SpecialBudgetListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()

	q := models.DB.
		Order("special_budgets.name ASC").
		Where(&where, queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 budgets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var budgets []models.SpecialBudget
	err := q.Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SpecialBudgetListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]SpecialBudget, 0, len(budgets))
	for _, budget := range budgets {
		apiResource, err := newSpecialBudget(c, models.DB, budget)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), SpecialBudgetListResponse{
				Error: &e,
			})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, SpecialBudgetListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get special budget
// @Description	Returns a specific special budget with its items
// @Tags			SpecialBudgets
// @Produce		json
// @Success		200	{object}	SpecialBudgetResponse
// @Failure		400	{object}	SpecialBudgetResponse
// @Failure		404	{object}	SpecialBudgetResponse
// @Failure		500	{object}	SpecialBudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/special-budgets/{id} [get]
func GetSpecialBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetResponse{
			Error: &e,
		})
		return
	}

	var budget models.SpecialBudget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetResponse{
			Error: &e,
		})
		return
	}

	apiResource, err := newSpecialBudget(c, models.DB, budget)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetResponse{
			Error: &e,
		})
		return
	}
	c.JSON(http.StatusOK, SpecialBudgetResponse{Data: &apiResource})
}

// @Summary		Update special budget
// @Description	Updates an existing special budget. Only values to be updated need to be specified.
// @Tags			SpecialBudgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	SpecialBudgetResponse
// @Failure		400		{object}	SpecialBudgetResponse
// @Failure		404		{object}	SpecialBudgetResponse
// @Failure		500		{object}	SpecialBudgetResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		SpecialBudgetEditable	true	"Special budget"
// @Router			/v1/special-budgets/{id} [patch]
func UpdateSpecialBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetResponse{
			Error: &e,
		})
		return
	}

	var budget models.SpecialBudget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, SpecialBudgetEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data SpecialBudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&budget).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetResponse{
			Error: &e,
		})
		return
	}

	apiResource, err := newSpecialBudget(c, models.DB, budget)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpecialBudgetResponse{
			Error: &e,
		})
		return
	}
	c.JSON(http.StatusOK, SpecialBudgetResponse{Data: &apiResource})
}

// @Summary		Delete special budget
// @Description	Deletes a special budget and all of its items
// @Tags			SpecialBudgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/special-budgets/{id} [delete]
func DeleteSpecialBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var budget models.SpecialBudget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Delete the items together with the budget
	err = models.DB.Where(&models.SpecialBudgetItem{SpecialBudgetID: budget.ID}).Delete(&models.SpecialBudgetItem{}).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
