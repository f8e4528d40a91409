package usecase

import (
	"context"

	"ideaboard/model"
	"ideaboard/utils"
)

type IdeaService struct {
	Ideas IdeaStore
}

func NewIdeaService(ideas IdeaStore) *IdeaService {
	return &IdeaService{Ideas: ideas}
}

func (s *IdeaService) Find(ctx context.Context, ideaID string) (*model.Idea, error) {
	return s.Ideas.FindIdea(ctx, ideaID)
}

// Upvote increments the counter and returns the idea as stored afterwards.
func (s *IdeaService) Upvote(ctx context.Context, ideaID string) (*model.Idea, error) {
	if err := s.Ideas.AddUpvoteToIdea(ctx, ideaID); err != nil {
		return nil, err
	}
	utils.TrackIdeaOperation("upvote")
	return s.Ideas.FindIdea(ctx, ideaID)
}

func (s *IdeaService) RemoveUpvote(ctx context.Context, ideaID string) (*model.Idea, error) {
	if err := s.Ideas.RemoveUpvoteFromIdea(ctx, ideaID); err != nil {
		return nil, err
	}
	utils.TrackIdeaOperation("remove_upvote")
	return s.Ideas.FindIdea(ctx, ideaID)
}

func (s *IdeaService) SetFlag(ctx context.Context, ideaID string, flag bool) (*model.Idea, error) {
	if err := s.Ideas.SetFlag(ctx, ideaID, flag); err != nil {
		return nil, err
	}
	utils.TrackIdeaOperation("flag")
	return s.Ideas.FindIdea(ctx, ideaID)
}
