package usecase

import (
	"context"

	"ideaboard/model"

	"github.com/stretchr/testify/mock"
)

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) AddUser(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserStore) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserStore) FindUser(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserStore) GetBoardsFromUser(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	boards, _ := args.Get(0).([]string)
	return boards, args.Error(1)
}

func (m *mockUserStore) AddBoardToUser(ctx context.Context, userID, boardID string) error {
	return m.Called(ctx, userID, boardID).Error(0)
}

func (m *mockUserStore) RemoveBoardFromUser(ctx context.Context, userID, boardID string) error {
	return m.Called(ctx, userID, boardID).Error(0)
}

type mockBoardStore struct{ mock.Mock }

func (m *mockBoardStore) AddBoard(ctx context.Context, moderator string) (*model.Board, error) {
	args := m.Called(ctx, moderator)
	board, _ := args.Get(0).(*model.Board)
	return board, args.Error(1)
}

func (m *mockBoardStore) FindBoard(ctx context.Context, boardID string) (*model.Board, error) {
	args := m.Called(ctx, boardID)
	board, _ := args.Get(0).(*model.Board)
	return board, args.Error(1)
}

func (m *mockBoardStore) FindBoardsByModerator(ctx context.Context, moderator string) ([]*model.Board, error) {
	args := m.Called(ctx, moderator)
	boards, _ := args.Get(0).([]*model.Board)
	return boards, args.Error(1)
}

func (m *mockBoardStore) GetBoardIdeas(ctx context.Context, boardID string) ([]*model.Idea, error) {
	args := m.Called(ctx, boardID)
	ideas, _ := args.Get(0).([]*model.Idea)
	return ideas, args.Error(1)
}

func (m *mockBoardStore) AddIdeaToBoard(ctx context.Context, boardID string, idea *model.Idea) (*model.Idea, error) {
	args := m.Called(ctx, boardID, idea)
	stored, _ := args.Get(0).(*model.Idea)
	return stored, args.Error(1)
}

func (m *mockBoardStore) RemoveIdeaFromBoard(ctx context.Context, boardID, ideaID string) error {
	return m.Called(ctx, boardID, ideaID).Error(0)
}

func (m *mockBoardStore) RemoveBoard(ctx context.Context, boardID string) error {
	return m.Called(ctx, boardID).Error(0)
}

type mockIdeaStore struct{ mock.Mock }

func (m *mockIdeaStore) FindIdea(ctx context.Context, ideaID string) (*model.Idea, error) {
	args := m.Called(ctx, ideaID)
	idea, _ := args.Get(0).(*model.Idea)
	return idea, args.Error(1)
}

func (m *mockIdeaStore) AddUpvoteToIdea(ctx context.Context, ideaID string) error {
	return m.Called(ctx, ideaID).Error(0)
}

func (m *mockIdeaStore) RemoveUpvoteFromIdea(ctx context.Context, ideaID string) error {
	return m.Called(ctx, ideaID).Error(0)
}

func (m *mockIdeaStore) SetFlag(ctx context.Context, ideaID string, flag bool) error {
	return m.Called(ctx, ideaID, flag).Error(0)
}
