package handler

import (
	"ideaboard/dto"
	"ideaboard/model"
	"ideaboard/usecase"
	"ideaboard/utils"

	"github.com/gin-gonic/gin"
)

// GetIdeaHandler returns a single idea.
//
// @Summary  Get an idea
// @Tags     Ideas
// @Produce  json
// @Param    ideaId  path      string  true  "Idea id"
// @Success  200     {object}  map[string]interface{}
// @Failure  404     {object}  utils.Response
// @Router   /ideas/{ideaId} [get]
func GetIdeaHandler(c *gin.Context, ideas *usecase.IdeaService) {
	idea, err := ideas.Find(c.Request.Context(), c.Param("ideaId"))
	if err != nil {
		respondError(c, err, "find idea")
		return
	}

	utils.Success(c, gin.H{"idea": idea})
}

// UpvoteHandler adds an upvote.
//
// @Summary  Upvote an idea
// @Tags     Ideas
// @Produce  json
// @Param    ideaId  path      string  true  "Idea id"
// @Success  200     {object}  map[string]interface{}
// @Failure  404     {object}  utils.Response
// @Router   /ideas/{ideaId}/upvote [post]
func UpvoteHandler(c *gin.Context, ideas *usecase.IdeaService) {
	respondIdea(c, "upvote idea", func() (*model.Idea, error) {
		return ideas.Upvote(c.Request.Context(), c.Param("ideaId"))
	})
}

// RemoveUpvoteHandler takes an upvote back. Counts never drop below zero.
//
// @Summary  Remove an upvote
// @Tags     Ideas
// @Produce  json
// @Param    ideaId  path      string  true  "Idea id"
// @Success  200     {object}  map[string]interface{}
// @Failure  404     {object}  utils.Response
// @Failure  409     {object}  utils.Response
// @Router   /ideas/{ideaId}/upvote [delete]
func RemoveUpvoteHandler(c *gin.Context, ideas *usecase.IdeaService) {
	respondIdea(c, "remove upvote", func() (*model.Idea, error) {
		return ideas.RemoveUpvote(c.Request.Context(), c.Param("ideaId"))
	})
}

// FlagHandler sets or clears the idea's flag.
//
// @Summary  Flag an idea
// @Tags     Ideas
// @Accept   json
// @Produce  json
// @Param    ideaId  path      string           true  "Idea id"
// @Param    body    body      dto.FlagRequest  true  "Flag"
// @Success  200     {object}  map[string]interface{}
// @Failure  400     {object}  utils.Response
// @Failure  404     {object}  utils.Response
// @Router   /ideas/{ideaId}/flag [put]
func FlagHandler(c *gin.Context, ideas *usecase.IdeaService) {
	var req dto.FlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	respondIdea(c, "flag idea", func() (*model.Idea, error) {
		return ideas.SetFlag(c.Request.Context(), c.Param("ideaId"), *req.Flag)
	})
}

func respondIdea(c *gin.Context, action string, fn func() (*model.Idea, error)) {
	idea, err := fn()
	if err != nil {
		respondError(c, err, action)
		return
	}
	utils.Success(c, gin.H{"idea": idea})
}
