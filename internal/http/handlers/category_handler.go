package handlers

import (
	"github.com/gin-gonic/gin"
)

// ListCategories godoc
// @ID          listCategories
// @Summary     List categories
// @Description Returns every board-game category.
// @Tags        Categories
// @Produce     json
// @Success     200  {object}  handlers.CategoriesResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal server error"
// @Router      /categories [get]
func (h *Handlers) ListCategories(c *gin.Context) {
	items, err := h.categorySvc.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, CategoriesResponse{Categories: mapViews(items, categoryView)})
}

// GetCategory godoc
// @ID          getCategory
// @Summary     Get a category
// @Description Returns the category identified by its slug.
// @Tags        Categories
// @Produce     json
// @Param       slug  path  string  true  "Category slug"  example(euro game)
// @Success     200  {object}  handlers.CategoryResponse
// @Failure     400  {object}  handlers.ErrorResponse  "bad request - slug is not a valid slug"
// @Failure     404  {object}  handlers.ErrorResponse  "slug not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal server error"
// @Router      /categories/{slug} [get]
func (h *Handlers) GetCategory(c *gin.Context) {
	cat, err := h.categorySvc.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, CategoryResponse{Category: categoryView(*cat)})
}
