package usecase

import (
	"context"
	"log"

	"ideaboard/model"
	"ideaboard/repository"
	"ideaboard/utils"
)

type BoardService struct {
	Boards    BoardStore
	IdeaStore IdeaStore
}

func NewBoardService(boards BoardStore, ideas IdeaStore) *BoardService {
	return &BoardService{Boards: boards, IdeaStore: ideas}
}

func (s *BoardService) Create(ctx context.Context, moderator string) (*model.Board, error) {
	board, err := s.Boards.AddBoard(ctx, moderator)
	if err != nil {
		return nil, err
	}
	utils.TrackBoardOperation("create")
	log.Printf("Board %s created by %s", board.BoardID, moderator)
	return board, nil
}

// Find looks a board up by its code. Codes are matched case-insensitively.
func (s *BoardService) Find(ctx context.Context, boardID string) (*model.Board, error) {
	board, err := s.Boards.FindBoard(ctx, utils.NormalizeBoardCode(boardID))
	if err != nil {
		return nil, err
	}
	utils.TrackBoardOperation("join")
	return board, nil
}

func (s *BoardService) ListByModerator(ctx context.Context, moderator string) ([]*model.Board, error) {
	return s.Boards.FindBoardsByModerator(ctx, moderator)
}

func (s *BoardService) Ideas(ctx context.Context, boardID string) ([]*model.Idea, error) {
	return s.Boards.GetBoardIdeas(ctx, utils.NormalizeBoardCode(boardID))
}

// AddIdea files content under the board. An empty creatorID marks an anonymous idea.
func (s *BoardService) AddIdea(ctx context.Context, boardID, creatorID, content string) (*model.Idea, error) {
	if creatorID == "" {
		creatorID = model.AnonymousCreator
	}

	idea, err := s.Boards.AddIdeaToBoard(ctx, utils.NormalizeBoardCode(boardID), &model.Idea{
		CreatorID: creatorID,
		Content:   content,
	})
	if err != nil {
		return nil, err
	}
	utils.TrackIdeaOperation("create")
	return idea, nil
}

// RemoveIdea deletes an idea. Only its creator or the board moderator may do so,
// and anonymous ideas can only be removed by the moderator.
func (s *BoardService) RemoveIdea(ctx context.Context, userID, boardID, ideaID string) error {
	code := utils.NormalizeBoardCode(boardID)
	board, err := s.Boards.FindBoard(ctx, code)
	if err != nil {
		return err
	}
	idea, err := s.IdeaStore.FindIdea(ctx, ideaID)
	if err != nil {
		return err
	}
	if idea.BoardID != code {
		return repository.ErrIdeaNotFound
	}

	isCreator := userID != "" && idea.CreatorID != model.AnonymousCreator && idea.CreatorID == userID
	if !isCreator && !board.IsModerator(userID) {
		return ErrForbidden
	}

	if err := s.Boards.RemoveIdeaFromBoard(ctx, code, ideaID); err != nil {
		return err
	}
	utils.TrackIdeaOperation("delete")
	return nil
}

// Remove deletes the board and its ideas. Only the moderator may do so.
func (s *BoardService) Remove(ctx context.Context, userID, boardID string) error {
	code := utils.NormalizeBoardCode(boardID)
	board, err := s.Boards.FindBoard(ctx, code)
	if err != nil {
		return err
	}
	if !board.IsModerator(userID) {
		return ErrForbidden
	}

	if err := s.Boards.RemoveBoard(ctx, code); err != nil {
		return err
	}
	utils.TrackBoardOperation("delete")
	return nil
}
