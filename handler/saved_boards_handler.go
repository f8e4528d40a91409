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

// GetSavedBoardsHandler lists the codes of the caller's saved boards.
//
// @Summary  Saved boards
// @Tags     Account
// @Produce  json
// @Success  200  {object}  map[string]interface{}
// @Failure  400  {object}  utils.Response
// @Failure  403  {object}  utils.Response
// @Router   /boards [get]
func GetSavedBoardsHandler(c *gin.Context, users *usecase.UserService) {
	userID, _, _ := middleware.CurrentUser(c)

	boards, err := users.SavedBoards(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Failed to load saved boards for %s: %v", userID, err)
		utils.TrackError("database", "saved_boards_lookup")
		utils.BadRequest(c, "Failed to load saved boards")
		return
	}

	utils.Success(c, gin.H{"boards": boards})
}

// SaveBoardHandler adds a board to the caller's saved list.
//
// @Summary  Save a board
// @Tags     Account
// @Accept   json
// @Produce  json
// @Param    body  body      dto.SaveBoardRequest  true  "Board code"
// @Success  200   {object}  map[string]interface{}
// @Failure  400   {object}  utils.Response
// @Failure  403   {object}  utils.Response
// @Failure  500   {object}  utils.Response
// @Router   /boards [put]
func SaveBoardHandler(c *gin.Context, users *usecase.UserService) {
	userID, _, _ := middleware.CurrentUser(c)

	var req dto.SaveBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid board code")
		return
	}

	code, err := users.SaveBoard(c.Request.Context(), userID, req.BoardID)
	if err != nil {
		if errors.Is(err, repository.ErrBoardNotFound) {
			utils.BadRequest(c, "No such board")
			return
		}
		log.Printf("Failed to save board %s for %s: %v", req.BoardID, userID, err)
		utils.TrackError("database", "save_board")
		utils.InternalError(c, "Failed to save board")
		return
	}

	utils.TrackBoardOperation("save")
	utils.Success(c, gin.H{"boardId": code})
}

// UnsaveBoardHandler removes a board from the caller's saved list.
//
// @Summary  Forget a saved board
// @Tags     Account
// @Produce  json
// @Param    boardId  path      string  true  "Board code"
// @Success  200      {object}  utils.Response
// @Failure  403      {object}  utils.Response
// @Failure  500      {object}  utils.Response
// @Router   /boards/{boardId} [delete]
func UnsaveBoardHandler(c *gin.Context, users *usecase.UserService) {
	userID, _, _ := middleware.CurrentUser(c)

	if err := users.UnsaveBoard(c.Request.Context(), userID, c.Param("boardId")); err != nil {
		log.Printf("Failed to unsave board for %s: %v", userID, err)
		utils.TrackError("database", "unsave_board")
		utils.InternalError(c, "Failed to remove saved board")
		return
	}

	utils.TrackBoardOperation("unsave")
	utils.Success(c, nil)
}
