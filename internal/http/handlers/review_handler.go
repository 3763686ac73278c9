package handlers

import (
	"github.com/gin-gonic/gin"
)

// GetReview godoc
// @ID          getReview
// @Summary     Get a review
// @Description Returns the review identified by review_id. The id must be a positive integer.
// @Tags        Reviews
// @Produce     json
// @Param       review_id  path  integer  true  "Review ID"  minimum(1)  example(1)
// @Success     200  {object}  handlers.ReviewResponse
// @Failure     400  {object}  handlers.ErrorResponse  "bad request - review_id is not a number"
// @Failure     404  {object}  handlers.ErrorResponse  "review_id not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal server error"
// @Router      /reviews/{review_id} [get]
func (h *Handlers) GetReview(c *gin.Context) {
	r, err := h.reviewSvc.Get(c.Request.Context(), c.Param("review_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, ReviewResponse{Review: reviewView(*r)})
}

// ListReviewComments godoc
// @ID          listReviewComments
// @Summary     List comments on a review
// @Description Returns the comments on a review, newest first.
// @Tags        Reviews
// @Produce     json
// @Param       review_id  path  integer  true  "Review ID"  minimum(1)  example(3)
// @Success     200  {object}  handlers.CommentsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "bad request - review_id is not a number"
// @Failure     404  {object}  handlers.ErrorResponse  "review_id not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal server error"
// @Router      /reviews/{review_id}/comments [get]
func (h *Handlers) ListReviewComments(c *gin.Context) {
	items, err := h.reviewSvc.Comments(c.Request.Context(), c.Param("review_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, CommentsResponse{Comments: mapViews(items, commentView)})
}
