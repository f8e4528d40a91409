package usecase

import (
	"context"

	"ideaboard/model"
)

// Stores the services depend on. The repository package implements all of them.

type UserStore interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
	FindUser(ctx context.Context, userID string) (*model.User, error)
	GetBoardsFromUser(ctx context.Context, userID string) ([]string, error)
	AddBoardToUser(ctx context.Context, userID, boardID string) error
	RemoveBoardFromUser(ctx context.Context, userID, boardID string) error
}

type BoardStore interface {
	AddBoard(ctx context.Context, moderator string) (*model.Board, error)
	FindBoard(ctx context.Context, boardID string) (*model.Board, error)
	FindBoardsByModerator(ctx context.Context, moderator string) ([]*model.Board, error)
	GetBoardIdeas(ctx context.Context, boardID string) ([]*model.Idea, error)
	AddIdeaToBoard(ctx context.Context, boardID string, idea *model.Idea) (*model.Idea, error)
	RemoveIdeaFromBoard(ctx context.Context, boardID, ideaID string) error
	RemoveBoard(ctx context.Context, boardID string) error
}

type IdeaStore interface {
	FindIdea(ctx context.Context, ideaID string) (*model.Idea, error)
	AddUpvoteToIdea(ctx context.Context, ideaID string) error
	RemoveUpvoteFromIdea(ctx context.Context, ideaID string) error
	SetFlag(ctx context.Context, ideaID string, flag bool) error
}
