package handler

import (
	"ideaboard/dto"
	"ideaboard/middleware"
	"ideaboard/usecase"
	"ideaboard/utils"

	"github.com/gin-gonic/gin"
)

// CreateBoardHandler creates a board moderated by the caller.
//
// @Summary  Create a board
// @Tags     Boards
// @Produce  json
// @Success  201  {object}  map[string]interface{}
// @Failure  403  {object}  utils.Response
// @Failure  500  {object}  utils.Response
// @Router   /board [post]
func CreateBoardHandler(c *gin.Context, boards *usecase.BoardService) {
	userID, _, _ := middleware.CurrentUser(c)

	board, err := boards.Create(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "create board")
		return
	}

	utils.Created(c, gin.H{"id": board.BoardID, "board": board})
}

// ListBoardsHandler lists the boards the caller moderates.
//
// @Summary  Moderated boards
// @Tags     Boards
// @Produce  json
// @Success  200  {object}  map[string]interface{}
// @Failure  403  {object}  utils.Response
// @Router   /board [get]
func ListBoardsHandler(c *gin.Context, boards *usecase.BoardService) {
	userID, _, _ := middleware.CurrentUser(c)

	list, err := boards.ListByModerator(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "list boards")
		return
	}

	utils.Success(c, gin.H{"boards": list})
}

// GetBoardHandler joins a board by code.
//
// @Summary  Get a board
// @Tags     Boards
// @Produce  json
// @Param    boardId  path      string  true  "Board code"
// @Success  200      {object}  map[string]interface{}
// @Failure  404      {object}  utils.Response
// @Router   /board/{boardId} [get]
func GetBoardHandler(c *gin.Context, boards *usecase.BoardService) {
	board, err := boards.Find(c.Request.Context(), c.Param("boardId"))
	if err != nil {
		respondError(c, err, "find board")
		return
	}

	utils.Success(c, gin.H{"board": board})
}

// DeleteBoardHandler removes a board and its ideas.
//
// @Summary  Delete a board
// @Tags     Boards
// @Produce  json
// @Param    boardId  path      string  true  "Board code"
// @Success  200      {object}  utils.Response
// @Failure  403      {object}  utils.Response
// @Failure  404      {object}  utils.Response
// @Router   /board/{boardId} [delete]
func DeleteBoardHandler(c *gin.Context, boards *usecase.BoardService) {
	userID, _, _ := middleware.CurrentUser(c)

	if err := boards.Remove(c.Request.Context(), userID, c.Param("boardId")); err != nil {
		respondError(c, err, "delete board")
		return
	}

	utils.Success(c, nil)
}

// GetBoardIdeasHandler lists a board's ideas, newest first.
//
// @Summary  Board ideas
// @Tags     Ideas
// @Produce  json
// @Param    boardId  path      string  true  "Board code"
// @Success  200      {object}  map[string]interface{}
// @Failure  404      {object}  utils.Response
// @Router   /board/{boardId}/ideas [get]
func GetBoardIdeasHandler(c *gin.Context, boards *usecase.BoardService) {
	ideas, err := boards.Ideas(c.Request.Context(), c.Param("boardId"))
	if err != nil {
		respondError(c, err, "list ideas")
		return
	}

	utils.Success(c, gin.H{"ideas": ideas})
}

// AddIdeaHandler submits an idea. Callers without a session post anonymously.
//
// @Summary  Add an idea
// @Tags     Ideas
// @Accept   json
// @Produce  json
// @Param    boardId  path      string                 true  "Board code"
// @Param    body     body      dto.CreateIdeaRequest  true  "Idea"
// @Success  201      {object}  map[string]interface{}
// @Failure  400      {object}  utils.Response
// @Failure  404      {object}  utils.Response
// @Router   /board/{boardId}/ideas [post]
func AddIdeaHandler(c *gin.Context, boards *usecase.BoardService) {
	var req dto.CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Ideas cannot be empty")
		return
	}

	userID, _, _ := middleware.CurrentUser(c)
	idea, err := boards.AddIdea(c.Request.Context(), c.Param("boardId"), userID, req.Content)
	if err != nil {
		respondError(c, err, "add idea")
		return
	}

	utils.Created(c, gin.H{"idea": idea})
}

// RemoveIdeaHandler deletes an idea from a board.
//
// @Summary  Remove an idea
// @Tags     Ideas
// @Produce  json
// @Param    boardId  path      string  true  "Board code"
// @Param    ideaId   path      string  true  "Idea id"
// @Success  200      {object}  utils.Response
// @Failure  403      {object}  utils.Response
// @Failure  404      {object}  utils.Response
// @Router   /board/{boardId}/ideas/{ideaId} [delete]
func RemoveIdeaHandler(c *gin.Context, boards *usecase.BoardService) {
	userID, _, _ := middleware.CurrentUser(c)

	if err := boards.RemoveIdea(c.Request.Context(), userID, c.Param("boardId"), c.Param("ideaId")); err != nil {
		respondError(c, err, "remove idea")
		return
	}

	utils.Success(c, nil)
}
