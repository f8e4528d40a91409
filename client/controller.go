package client

import (
	"context"
	"log"

	"ideaboard/model"
)

// BoardAPI is the part of Client the board page needs.
type BoardAPI interface {
	CreateBoard(ctx context.Context) (string, error)
	GetBoard(ctx context.Context, code string) (*model.Board, error)
}

// BoardController holds the state of the create/join landing page.
type BoardController struct {
	API BoardAPI

	Create   bool
	Join     bool
	Homepage bool

	// BoardCode is the code of a freshly created board, or the code typed to join one.
	BoardCode string
	// SuccessfulCode is "false" after a failed join and empty otherwise.
	SuccessfulCode string
	// Location is the page the controller navigated to.
	Location string
}

func NewBoardController(api BoardAPI) *BoardController {
	return &BoardController{API: api, Homepage: true}
}

// Either reports whether the create or join panel is open.
func (bc *BoardController) Either() bool {
	return bc.Create || bc.Join
}

// CreateBoard opens the create panel and asks the server for a new board.
func (bc *BoardController) CreateBoard(ctx context.Context) error {
	bc.Create = true
	bc.Join = false

	code, err := bc.API.CreateBoard(ctx)
	if err != nil {
		log.Printf("Failed to create board: %v", err)
		return err
	}
	bc.BoardCode = code
	return nil
}

func (bc *BoardController) JoinBoard() {
	bc.Join = true
	bc.Create = false
}

// GetBoard looks the code up and navigates to the board when it exists.
func (bc *BoardController) GetBoard(ctx context.Context, code string) bool {
	bc.SuccessfulCode = ""

	board, err := bc.API.GetBoard(ctx, code)
	if err != nil || board == nil {
		bc.SuccessfulCode = "false"
		return false
	}

	bc.BoardCode = board.BoardID
	bc.Location = "/boards/" + board.BoardID
	return true
}

func (bc *BoardController) Reset() {
	bc.Create = false
	bc.Join = false
}
