package handler

import (
	"log"

	"ideaboard/dto"
	"ideaboard/middleware"
	"ideaboard/services"
	"ideaboard/usecase"
	"ideaboard/utils"

	"github.com/gin-gonic/gin"
)

// LoginHandler checks credentials, starts a cookie session and hands out a
// bearer token for API clients.
//
// @Summary  Log in
// @Tags     Account
// @Accept   json
// @Produce  json
// @Param    body  body      dto.LoginRequest  true  "Credentials"
// @Success  200   {object}  map[string]interface{}
// @Failure  400   {object}  utils.Response
// @Failure  401   {object}  utils.Response
// @Failure  500   {object}  utils.Response
// @Router   /login [post]
func LoginHandler(c *gin.Context, users *usecase.UserService, sessions *middleware.Sessions, tokens *services.TokenService) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid request")
		return
	}

	ok, user, err := users.Verify(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		log.Printf("Login lookup failed: %v", err)
		utils.TrackError("auth", "user_lookup")
		utils.InternalError(c, "Failed to log in")
		return
	}
	if !ok {
		utils.TrackAuthAttempt("failure", "invalid_credentials")
		utils.Unauthorized(c, "Invalid username or password")
		return
	}

	token, err := tokens.GenerateToken(user.UserID, user.Username)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate token")
		return
	}

	if _, err := sessions.Start(c, user.UserID, user.Username); err != nil {
		log.Printf("Failed to start session for %s: %v", user.UserID, err)
		utils.TrackError("session", "creation")
		utils.InternalError(c, "Failed to create session")
		return
	}

	utils.TrackAuthAttempt("success", "login")
	utils.Success(c, gin.H{"token": token})
}
