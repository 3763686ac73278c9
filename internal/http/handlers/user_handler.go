package handlers

import (
	"github.com/gin-gonic/gin"
)

// ListUsers godoc
// @ID          listUsers
// @Summary     List users
// @Description Returns every user, ordered by username.
// @Tags        Users
// @Produce     json
// @Success     200  {object}  handlers.UsersResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal server error"
// @Router      /users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	items, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, UsersResponse{Users: mapViews(items, userView)})
}
