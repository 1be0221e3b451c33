package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishweek/backend/internal/httputil"
	"github.com/wishweek/backend/internal/models"
	"golang.org/x/exp/slices"
)

func RegisterFixedExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsFixedExpenses)
		r.GET("", GetFixedExpenses)
		r.POST("", CreateFixedExpenses)
	}
	{
		r.OPTIONS("/:id", OptionsFixedExpenseDetail)
		r.GET("/:id", GetFixedExpense)
		r.PATCH("/:id", UpdateFixedExpense)
		r.DELETE("/:id", DeleteFixedExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			FixedExpenses
// @Success		204
// @Router			/v1/fixed-expenses [options]
func OptionsFixedExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			FixedExpenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/fixed-expenses/{id} [options]
func OptionsFixedExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.FixedExpense{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create fixed expenses
// @Description	Creates new fixed monthly expenses
// @Tags			FixedExpenses
// @Produce		json
// @Success		201			{object}	FixedExpenseCreateResponse
// @Failure		400			{object}	FixedExpenseCreateResponse
// @Failure		500			{object}	FixedExpenseCreateResponse
// @Param			expenses	body		[]FixedExpenseEditable	true	"Fixed expenses"
// @Router			/v1/fixed-expenses [post]
func CreateFixedExpenses(c *gin.Context) {
	var editables []FixedExpenseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := FixedExpenseCreateResponse{}

	for _, editable := range editables {
		expense := editable.model()
		err = models.DB.Create(&expense).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newFixedExpense(c, expense)
		r.Data = append(r.Data, FixedExpenseResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get fixed expenses
// @Description	Returns a list of fixed monthly expenses
// @Tags			FixedExpenses
// @Produce		json
// @Success		200	{object}	FixedExpenseListResponse
// @Failure		400	{object}	FixedExpenseListResponse
// @Failure		500	{object}	FixedExpenseListResponse
// @Router			/v1/fixed-expenses [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			enabled	query	bool	false	"Is the expense enabled?"
// @Param			offset	query	uint	false	"The offset of the first expense returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of expenses to return. Defaults to 50."
func GetFixedExpenses(c *gin.Context) {
	var filter FixedExpenseQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, FixedExpenseListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()

	q := models.DB.
		Order("fixed_expenses.name ASC").
		Where(&where, queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 expenses and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var expenses []models.FixedExpense
	err := q.Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FixedExpenseListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedExpenseListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]FixedExpense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newFixedExpense(c, expense))
	}

	c.JSON(http.StatusOK, FixedExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get fixed expense
// @Description	Returns a specific fixed expense
// @Tags			FixedExpenses
// @Produce		json
// @Success		200	{object}	FixedExpenseResponse
// @Failure		400	{object}	FixedExpenseResponse
// @Failure		404	{object}	FixedExpenseResponse
// @Failure		500	{object}	FixedExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/fixed-expenses/{id} [get]
func GetFixedExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedExpenseResponse{
			Error: &e,
		})
		return
	}

	var expense models.FixedExpense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedExpenseResponse{
			Error: &e,
		})
		return
	}

	apiResource := newFixedExpense(c, expense)
	c.JSON(http.StatusOK, FixedExpenseResponse{Data: &apiResource})
}

// @Summary		Update fixed expense
// @Description	Updates an existing fixed expense. Only values to be updated need to be specified.
// @Tags			FixedExpenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	FixedExpenseResponse
// @Failure		400		{object}	FixedExpenseResponse
// @Failure		404		{object}	FixedExpenseResponse
// @Failure		500		{object}	FixedExpenseResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		FixedExpenseEditable	true	"Fixed expense"
// @Router			/v1/fixed-expenses/{id} [patch]
func UpdateFixedExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedExpenseResponse{
			Error: &e,
		})
		return
	}

	var expense models.FixedExpense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedExpenseResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, FixedExpenseEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedExpenseResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data FixedExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedExpenseResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedExpenseResponse{
			Error: &e,
		})
		return
	}

	apiResource := newFixedExpense(c, expense)
	c.JSON(http.StatusOK, FixedExpenseResponse{Data: &apiResource})
}

// @Summary		Delete fixed expense
// @Description	Deletes a fixed expense
// @Tags			FixedExpenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/fixed-expenses/{id} [delete]
func DeleteFixedExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var expense models.FixedExpense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
