package handler

import (
	"errors"
	"log"

	"ideaboard/dto"
	"ideaboard/middleware"
	"ideaboard/repository"
	"ideaboard/usecase"
	"ideaboard/utils"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler creates an account and logs the new user in.
//
// @Summary  Register a user
// @Tags     Account
// @Accept   json
// @Produce  json
// @Param    body  body      dto.RegisterRequest  true  "Credentials"
// @Success  201   {object}  utils.Response
// @Failure  400   {object}  utils.Response
// @Failure  409   {object}  utils.Response
// @Failure  500   {object}  utils.Response
// @Router   /register [post]
func RegistrationHandler(c *gin.Context, users *usecase.UserService, sessions *middleware.Sessions) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "register")
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.TrackAuthAttempt("failure", "register")
		switch {
		case errors.Is(err, repository.ErrUsernameTaken):
			utils.Conflict(c, "Username already exists")
		case errors.Is(err, usecase.ErrWeakPassword), errors.Is(err, repository.ErrInvalidUser):
			utils.BadRequest(c, "Invalid request")
		default:
			log.Printf("Registration failed: %v", err)
			utils.TrackError("auth", "registration_failed")
			utils.InternalError(c, "Failed to register")
		}
		return
	}

	if _, err := sessions.Start(c, user.UserID, user.Username); err != nil {
		log.Printf("Failed to start session for new user %s: %v", user.UserID, err)
		utils.TrackError("session", "creation")
		utils.InternalError(c, "Failed to create session")
		return
	}

	utils.TrackAuthAttempt("success", "register")
	utils.Created(c, nil)
}
