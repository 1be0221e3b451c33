package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wishweek/backend/internal/httputil"
	"github.com/wishweek/backend/internal/models"
	"golang.org/x/exp/slices"
)

func RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudgets)
		r.GET("", GetBudgets)
		r.POST("", CreateBudgets)
	}
	{
		r.OPTIONS("/suggested", OptionsSuggestedBudget)
		r.GET("/suggested", GetSuggestedBudget)
	}
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.WeeklyBudget{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/suggested [options]
func OptionsSuggestedBudget(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create budgets
// @Description	Creates new weekly budgets
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	WeeklyBudgetCreateResponse
// @Failure		400		{object}	WeeklyBudgetCreateResponse
// @Failure		500		{object}	WeeklyBudgetCreateResponse
// @Param			budgets	body		[]WeeklyBudgetEditable	true	"Budgets"
// @Router			/v1/budgets [post]
func CreateBudgets(c *gin.Context) {
	var editables []WeeklyBudgetEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyBudgetCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := WeeklyBudgetCreateResponse{}

	for _, editable := range editables {
		budget := editable.model()
		err = models.DB.Create(&budget).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newWeeklyBudget(c, budget)
		r.Data = append(r.Data, WeeklyBudgetResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get budgets
// @Description	Returns a list of weekly budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	WeeklyBudgetListResponse
// @Failure		400	{object}	WeeklyBudgetListResponse
// @Failure		500	{object}	WeeklyBudgetListResponse
// @Router			/v1/budgets [get]
// @Param			week	query	string	false	"Filter by ISO week"
// @Param			note	query	string	false	"Filter by note"
// @Param			settled	query	bool	false	"Is the budget settled?"
// @Param			offset	query	uint	false	"The offset of the first budget returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of budgets to return. Defaults to 50."
func GetBudgets(c *gin.Context) {
	var filter WeeklyBudgetQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, WeeklyBudgetListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyBudgetListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("date(weekly_budgets.week) DESC").
		Where(&where, queryFields...)

	if filter.Note != "" {
		q = q.Where("note LIKE ?", "%"+filter.Note+"%")
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("note = ''")
	}

	if filter.Week != "" {
		q = q.Where("weekly_budgets.week >= date(?)", where.Week).Where("weekly_budgets.week < date(?)", where.Week.Next())
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 budgets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var budgets []models.WeeklyBudget
	err = q.Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyBudgetListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyBudgetListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]WeeklyBudget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newWeeklyBudget(c, budget))
	}

	c.JSON(http.StatusOK, WeeklyBudgetListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget
// @Description	Returns a specific weekly budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	WeeklyBudgetResponse
// @Failure		400	{object}	WeeklyBudgetResponse
// @Failure		404	{object}	WeeklyBudgetResponse
// @Failure		500	{object}	WeeklyBudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyBudgetResponse{
			Error: &e,
		})
		return
	}

	var budget models.WeeklyBudget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyBudgetResponse{
			Error: &e,
		})
		return
	}

	apiResource := newWeeklyBudget(c, budget)
	c.JSON(http.StatusOK, WeeklyBudgetResponse{Data: &apiResource})
}

// @Summary		Suggested weekly budget
// @Description	Computes the suggested weekly budget from a monthly amount and the active fixed expenses
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	SuggestedBudgetResponse
// @Failure		400		{object}	SuggestedBudgetResponse
// @Failure		500		{object}	SuggestedBudgetResponse
// @Param			monthly	query		string	true	"The monthly amount available"
// @Router			/v1/budgets/suggested [get]
func GetSuggestedBudget(c *gin.Context) {
	monthlyString, ok := c.GetQuery("monthly")
	if !ok {
		e := errMonthlyNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, SuggestedBudgetResponse{
			Error: &e,
		})
		return
	}

	monthly, err := decimal.NewFromString(monthlyString)
	if err != nil {
		e := errMonthlyNotADecimal.Error()
		c.JSON(http.StatusBadRequest, SuggestedBudgetResponse{
			Error: &e,
		})
		return
	}

	now := time.Now()

	fixed, err := models.ActiveFixedExpenseSum(models.DB, now)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SuggestedBudgetResponse{
			Error: &e,
		})
		return
	}

	suggested, err := models.SuggestedWeeklyBudget(models.DB, monthly, now)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SuggestedBudgetResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SuggestedBudgetResponse{
		Data: &SuggestedBudget{
			Monthly:       monthly,
			FixedExpenses: fixed,
			Suggested:     suggested,
		},
	})
}

// @Summary		Update budget
// @Description	Updates an existing weekly budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	WeeklyBudgetResponse
// @Failure		400		{object}	WeeklyBudgetResponse
// @Failure		404		{object}	WeeklyBudgetResponse
// @Failure		500		{object}	WeeklyBudgetResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		WeeklyBudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyBudgetResponse{
			Error: &e,
		})
		return
	}

	var budget models.WeeklyBudget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyBudgetResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, WeeklyBudgetEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyBudgetResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data WeeklyBudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyBudgetResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&budget).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyBudgetResponse{
			Error: &e,
		})
		return
	}

	apiResource := newWeeklyBudget(c, budget)
	c.JSON(http.StatusOK, WeeklyBudgetResponse{Data: &apiResource})
}

// @Summary		Delete budget
// @Description	Deletes a weekly budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var budget models.WeeklyBudget
	err = models.DB.First(&budget, uri.ID).Error
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
