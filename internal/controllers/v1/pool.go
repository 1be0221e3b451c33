package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wishweek/backend/internal/httputil"
	"github.com/wishweek/backend/internal/models"
	"github.com/wishweek/backend/internal/types"
	"golang.org/x/exp/slices"
)

func RegisterPoolRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsPool)
		r.GET("", GetPool)
	}
	{
		r.OPTIONS("/entries", OptionsPoolEntries)
		r.GET("/entries", GetPoolEntries)
	}
	{
		r.OPTIONS("/entries/:id", OptionsPoolEntryDetail)
		r.GET("/entries/:id", GetPoolEntry)
	}
	{
		r.OPTIONS("/settlements", OptionsSettlements)
		r.POST("/settlements", CreateSettlement)
	}
	{
		r.OPTIONS("/settlements/:week", OptionsSettlementDetail)
		r.GET("/settlements/:week", GetSettlement)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Pool
// @Success		204
// @Router			/v1/pool [options]
func OptionsPool(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Pool
// @Success		204
// @Router			/v1/pool/entries [options]
func OptionsPoolEntries(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Pool
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/pool/entries/{id} [options]
func OptionsPoolEntryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.PoolEntry{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Pool
// @Success		204
// @Router			/v1/pool/settlements [options]
func OptionsSettlements(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Pool
// @Success		204
// @Failure		400	{object}	httpError
// @Router			/v1/pool/settlements/{week} [options]
func OptionsSettlementDetail(c *gin.Context) {
	var uri URIWeek
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get pool
// @Description	Returns the current pool balance
// @Tags			Pool
// @Produce		json
// @Success		200	{object}	PoolResponse
// @Failure		500	{object}	PoolResponse
// @Router			/v1/pool [get]
func GetPool(c *gin.Context) {
	balance, err := models.PoolBalance(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PoolResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, PoolResponse{
		Data: &Pool{
			Balance: balance,
			Links: PoolLinks{
				Entries:     url + "/v1/pool/entries",
				Settlements: url + "/v1/pool/settlements",
			},
		},
	})
}

// @Summary		Get pool entries
// @Description	Returns the pool ledger
// @Tags			Pool
// @Produce		json
// @Success		200	{object}	PoolEntryListResponse
// @Failure		400	{object}	PoolEntryListResponse
// @Failure		500	{object}	PoolEntryListResponse
// @Router			/v1/pool/entries [get]
// @Param			week		query	string	false	"Filter by the settled ISO week"
// @Param			deduction	query	bool	false	"Only deduction or only credit entries"
// @Param			wish		query	string	false	"Filter by wish ID"
// @Param			offset		query	uint	false	"The offset of the first entry returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of entries to return. Defaults to 50."
func GetPoolEntries(c *gin.Context) {
	var filter PoolEntryQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PoolEntryListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PoolEntryListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("pool_entries.created_at ASC").
		Where(&where, queryFields...)

	if filter.Week != "" {
		q = q.Where("pool_entries.week >= date(?)", where.Week).Where("pool_entries.week < date(?)", where.Week.Next())
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 entries and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var entries []models.PoolEntry
	err = q.Find(&entries).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PoolEntryListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PoolEntryListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]PoolEntry, 0, len(entries))
	for _, entry := range entries {
		data = append(data, newPoolEntry(c, entry))
	}

	c.JSON(http.StatusOK, PoolEntryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get pool entry
// @Description	Returns a specific pool entry
// @Tags			Pool
// @Produce		json
// @Success		200	{object}	PoolEntryResponse
// @Failure		400	{object}	PoolEntryResponse
// @Failure		404	{object}	PoolEntryResponse
// @Failure		500	{object}	PoolEntryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/pool/entries/{id} [get]
func GetPoolEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PoolEntryResponse{
			Error: &e,
		})
		return
	}

	var entry models.PoolEntry
	err = models.DB.First(&entry, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PoolEntryResponse{
			Error: &e,
		})
		return
	}

	apiResource := newPoolEntry(c, entry)
	c.JSON(http.StatusOK, PoolEntryResponse{Data: &apiResource})
}

// @Summary		Settle a week
// @Description	Credits the week's saved amount to the pool and marks the budget settled. Each week can only be settled once.
// @Tags			Pool
// @Accept			json
// @Produce		json
// @Success		201			{object}	PoolEntryResponse
// @Failure		400			{object}	PoolEntryResponse
// @Failure		500			{object}	PoolEntryResponse
// @Param			settlement	body		SettlementEditable	true	"Settlement"
// @Router			/v1/pool/settlements [post]
func CreateSettlement(c *gin.Context) {
	var editable SettlementEditable

	// An empty body settles the default week
	err := httputil.BindData(c, &editable)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		e := err.Error()
		c.JSON(status(err), PoolEntryResponse{
			Error: &e,
		})
		return
	}

	// An empty week settles the week before the current one
	week := types.WeekOf(time.Now()).Previous()
	if editable.Week != "" {
		week, err = types.ParseWeek(editable.Week)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, PoolEntryResponse{
				Error: &e,
			})
			return
		}
	}

	entry, err := models.SettleWeek(models.DB, week)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PoolEntryResponse{
			Error: &e,
		})
		return
	}

	apiResource := newPoolEntry(c, entry)
	c.JSON(http.StatusCreated, PoolEntryResponse{Data: &apiResource})
}

// @Summary		Get settlement state
// @Description	Returns the settlement state and the computed amounts for a week without settling it
// @Tags			Pool
// @Produce		json
// @Success		200		{object}	SettlementResponse
// @Failure		400		{object}	SettlementResponse
// @Failure		500		{object}	SettlementResponse
// @Param			week	path		string	true	"ISO week in YYYY-Www format"
// @Router			/v1/pool/settlements/{week} [get]
func GetSettlement(c *gin.Context) {
	var uri URIWeek
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettlementResponse{
			Error: &e,
		})
		return
	}

	settlement, err := models.PreviewSettlement(models.DB, uri.Week)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettlementResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSettlement(settlement)
	c.JSON(http.StatusOK, SettlementResponse{Data: &apiResource})
}
