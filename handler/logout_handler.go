package handler

import (
	"log"
	"time"

	"ideaboard/middleware"
	"ideaboard/services"
	"ideaboard/utils"

	"github.com/gin-gonic/gin"
)

// LogoutHandler ends the cookie session and revokes the bearer token, if any.
// Revocation needs Redis: without a blacklist the token stays valid until it expires.
//
// @Summary  Log out
// @Tags     Account
// @Produce  json
// @Success  200  {object}  utils.Response
// @Failure  500  {object}  utils.Response
// @Router   /logout [post]
func LogoutHandler(c *gin.Context, sessions *middleware.Sessions, blacklist *services.TokenBlacklist) {
	if err := sessions.End(c); err != nil {
		log.Printf("Failed to end session: %v", err)
		utils.TrackError("session", "end")
		utils.InternalError(c, "Failed to log out")
		return
	}

	token := c.GetString("token")
	switch {
	case token == "":
	case blacklist == nil:
		log.Printf("Warning: token blacklist not configured, bearer token for %s stays valid until it expires", c.GetString("user_id"))
		utils.TrackError("auth", "blacklist_unavailable")
	default:
		expiresAt, _ := c.Get("token_expires_at")
		exp, ok := expiresAt.(time.Time)
		if !ok {
			exp = time.Now().Add(24 * time.Hour)
		}
		if err := blacklist.Add(c.Request.Context(), token, exp); err != nil {
			log.Printf("Failed to blacklist token: %v", err)
			utils.TrackError("auth", "blacklist")
		}
	}

	utils.Success(c, nil)
}
