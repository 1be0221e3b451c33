package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/wishweek/backend/internal/httputil"
	"github.com/wishweek/backend/internal/models"
	"golang.org/x/exp/slices"
)

func RegisterWishRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsWishes)
		r.GET("", GetWishes)
		r.POST("", CreateWishes)
	}
	{
		r.OPTIONS("/:id", OptionsWishDetail)
		r.GET("/:id", GetWish)
		r.PATCH("/:id", UpdateWish)
		r.DELETE("/:id", DeleteWish)
	}
	{
		r.OPTIONS("/:id/fulfill", OptionsWishFulfill)
		r.POST("/:id/fulfill", FulfillWish)
		r.OPTIONS("/:id/revoke", OptionsWishRevoke)
		r.POST("/:id/revoke", RevokeWish)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wishes
// @Success		204
// @Router			/v1/wishes [options]
func OptionsWishes(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wishes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wishes/{id} [options]
func OptionsWishDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Wish{}, uri.ID).Error
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
// @Tags			Wishes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wishes/{id}/fulfill [options]
func OptionsWishFulfill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Wish{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wishes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wishes/{id}/revoke [options]
func OptionsWishRevoke(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Wish{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create wishes
// @Description	Creates new wishes
// @Tags			Wishes
// @Produce		json
// @Success		201		{object}	WishCreateResponse
// @Failure		400		{object}	WishCreateResponse
// @Failure		500		{object}	WishCreateResponse
// @Param			wishes	body		[]WishEditable	true	"Wishes"
// @Router			/v1/wishes [post]
func CreateWishes(c *gin.Context) {
	var editables []WishEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := WishCreateResponse{}

	for _, editable := range editables {
		wish := editable.model()
		err = models.DB.Create(&wish).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newWish(c, wish)
		r.Data = append(r.Data, WishResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get wishes
// @Description	Returns a list of wishes
// @Tags			Wishes
// @Produce		json
// @Success		200	{object}	WishListResponse
// @Failure		400	{object}	WishListResponse
// @Failure		500	{object}	WishListResponse
// @Router			/v1/wishes [get]
// @Param			name		query	string	false	"Filter by name, glob patterns are supported"
// @Param			note		query	string	false	"Filter by note"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			fulfilled	query	bool	false	"Is the wish fulfilled?"
// @Param			amount		query	string	false	"Filter by amount"
// @Param			offset		query	uint	false	"The offset of the first wish returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of wishes to return. Defaults to 50."
func GetWishes(c *gin.Context) {
	var filter WishQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, WishListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()

	q := models.DB.
		Order("wishes.created_at ASC").
		Where(&where, queryFields...)

	if filter.Note != "" {
		q = q.Where("note LIKE ?", "%"+filter.Note+"%")
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("note = ''")
	}

	if filter.Search != "" {
		q = q.Where(
			models.DB.Where("note LIKE ?", "%"+filter.Search+"%").Or(
				models.DB.Where("name LIKE ?", "%"+filter.Search+"%"),
			),
		)
	}

	var wishes []models.Wish
	err := q.Find(&wishes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WishListResponse{
			Error: &s,
		})
		return
	}

	// The name filter supports glob patterns, it is matched in memory
	if filter.Name != "" {
		matched := make([]models.Wish, 0, len(wishes))
		for _, wish := range wishes {
			if glob.Glob(strings.ToLower(filter.Name), strings.ToLower(wish.Name)) {
				matched = append(matched, wish)
			}
		}
		wishes = matched
	} else if slices.Contains(setFields, "Name") {
		matched := make([]models.Wish, 0)
		for _, wish := range wishes {
			if wish.Name == "" {
				matched = append(matched, wish)
			}
		}
		wishes = matched
	}

	// Pagination over the matched set
	total := int64(len(wishes))

	if filter.Offset > 0 {
		if int(filter.Offset) > len(wishes) {
			wishes = []models.Wish{}
		} else {
			wishes = wishes[filter.Offset:]
		}
	}

	// Default to 50 wishes and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	if limit >= 0 && len(wishes) > limit {
		wishes = wishes[:limit]
	}

	// Transform resources to their API representation
	data := make([]Wish, 0, len(wishes))
	for _, wish := range wishes {
		data = append(data, newWish(c, wish))
	}

	c.JSON(http.StatusOK, WishListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get wish
// @Description	Returns a specific wish
// @Tags			Wishes
// @Produce		json
// @Success		200	{object}	WishResponse
// @Failure		400	{object}	WishResponse
// @Failure		404	{object}	WishResponse
// @Failure		500	{object}	WishResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wishes/{id} [get]
func GetWish(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishResponse{
			Error: &e,
		})
		return
	}

	var wish models.Wish
	err = models.DB.First(&wish, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishResponse{
			Error: &e,
		})
		return
	}

	apiResource := newWish(c, wish)
	c.JSON(http.StatusOK, WishResponse{Data: &apiResource})
}

// @Summary		Fulfill wish
// @Description	Pays the wish out of the pool. Fails when the pool balance is smaller than the wish amount.
// @Tags			Wishes
// @Produce		json
// @Success		201	{object}	PoolEntryResponse
// @Failure		400	{object}	PoolEntryResponse
// @Failure		404	{object}	PoolEntryResponse
// @Failure		500	{object}	PoolEntryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wishes/{id}/fulfill [post]
func FulfillWish(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PoolEntryResponse{
			Error: &e,
		})
		return
	}

	entry, err := models.FulfillWish(models.DB, uri.ID.UUID)
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

// @Summary		Revoke wish fulfillment
// @Description	Returns the wish's money to the pool and marks the wish as unfulfilled
// @Tags			Wishes
// @Produce		json
// @Success		200	{object}	WishResponse
// @Failure		400	{object}	WishResponse
// @Failure		404	{object}	WishResponse
// @Failure		500	{object}	WishResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wishes/{id}/revoke [post]
func RevokeWish(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishResponse{
			Error: &e,
		})
		return
	}

	err = models.RevokeWishFulfillment(models.DB, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishResponse{
			Error: &e,
		})
		return
	}

	var wish models.Wish
	err = models.DB.First(&wish, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishResponse{
			Error: &e,
		})
		return
	}

	apiResource := newWish(c, wish)
	c.JSON(http.StatusOK, WishResponse{Data: &apiResource})
}

// @Summary		Update wish
// @Description	Updates an existing wish. Only values to be updated need to be specified.
// @Tags			Wishes
// @Accept			json
// @Produce		json
// @Success		200		{object}	WishResponse
// @Failure		400		{object}	WishResponse
// @Failure		404		{object}	WishResponse
// @Failure		500		{object}	WishResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			wish	body		WishEditable	true	"Wish"
// @Router			/v1/wishes/{id} [patch]
func UpdateWish(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishResponse{
			Error: &e,
		})
		return
	}

	var wish models.Wish
	err = models.DB.First(&wish, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, WishEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data WishEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&wish).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishResponse{
			Error: &e,
		})
		return
	}

	apiResource := newWish(c, wish)
	c.JSON(http.StatusOK, WishResponse{Data: &apiResource})
}

// @Summary		Delete wish
// @Description	Deletes a wish
// @Tags			Wishes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wishes/{id} [delete]
func DeleteWish(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var wish models.Wish
	err = models.DB.First(&wish, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&wish).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
