package handler

import (
	"net/http"

	"ideaboard/dto"
	"ideaboard/middleware"
	"ideaboard/model"

	"github.com/gin-gonic/gin"
)

// SessionHandler tells the front end whether the caller is logged in.
//
// @Summary  Current session
// @Tags     Account
// @Produce  json
// @Success  200  {object}  dto.SessionResponse
// @Router   /session [get]
func SessionHandler(c *gin.Context) {
	userID, username, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusOK, dto.SessionResponse{LoggedIn: false})
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{
		LoggedIn: true,
		User:     &model.SessionUser{Name: username, ID: userID},
	})
}
