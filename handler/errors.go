package handler

import (
	"errors"
	"log"

	"ideaboard/repository"
	"ideaboard/usecase"
	"ideaboard/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps board and idea failures onto the response envelope.
func respondError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, repository.ErrBoardNotFound):
		utils.NotFound(c, "No such board")
	case errors.Is(err, repository.ErrIdeaNotFound):
		utils.NotFound(c, "No such idea")
	case errors.Is(err, usecase.ErrForbidden):
		utils.Forbidden(c, "Only the owner can do that")
	case errors.Is(err, repository.ErrContentTooLong):
		utils.BadRequest(c, "Limit ideas to 140 characters!")
	case errors.Is(err, repository.ErrInvalidIdea):
		utils.BadRequest(c, "Invalid idea")
	case errors.Is(err, repository.ErrNoUpvotes):
		utils.Conflict(c, "Idea has no upvotes to remove")
	default:
		log.Printf("Failed to %s: %v", action, err)
		utils.TrackError("handler", action)
		utils.InternalError(c, "Failed to "+action)
	}
}
