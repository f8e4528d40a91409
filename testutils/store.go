package testutils

import (
	"context"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"ideaboard/model"
	"ideaboard/repository"
	"ideaboard/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is an in-memory stand-in for the Mongo repositories. It reports the
// same sentinel errors so handlers and services can be exercised without a database.
type Store struct {
	mu sync.Mutex

	users    map[string]*model.User
	boards   map[string]*model.Board
	ideas    map[primitive.ObjectID]*model.Idea
	sessions map[string]*model.Session

	Clock   MockableTime
	Touches int
}

func NewStore() *Store {
	return &Store{
		users:    map[string]*model.User{},
		boards:   map[string]*model.Board{},
		ideas:    map[primitive.ObjectID]*model.Idea{},
		sessions: map[string]*model.Session{},
		Clock:    RealTime{},
	}
}

func (s *Store) now() time.Time {
	return s.Clock.Now().UTC().Truncate(time.Millisecond)
}

func copyUser(u *model.User) *model.User {
	c := *u
	c.Boards = append([]string{}, u.Boards...)
	return &c
}

func copyBoard(b *model.Board) *model.Board {
	c := *b
	c.Ideas = append([]primitive.ObjectID{}, b.Ideas...)
	return &c
}

func copyIdea(i *model.Idea) *model.Idea {
	c := *i
	return &c
}

// Users

func (s *Store) AddUser(_ context.Context, user *model.User) error {
	if err := utils.Validate.Struct(user); err != nil {
		return repository.ErrInvalidUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return repository.ErrUsernameTaken
		}
	}
	if user.Boards == nil {
		user.Boards = []string{}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now()
	}
	s.users[user.UserID] = copyUser(user)
	return nil
}

func (s *Store) FindUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *Store) FindUser(_ context.Context, userID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (s *Store) GetBoardsFromUser(ctx context.Context, userID string) ([]string, error) {
	u, err := s.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.Boards, nil
}

func (s *Store) AddBoardToUser(_ context.Context, userID, boardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	for _, b := range u.Boards {
		if b == boardID {
			return nil
		}
	}
	u.Boards = append(u.Boards, boardID)
	return nil
}

func (s *Store) RemoveBoardFromUser(_ context.Context, userID, boardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	kept := u.Boards[:0]
	for _, b := range u.Boards {
		if b != boardID {
			kept = append(kept, b)
		}
	}
	u.Boards = kept
	return nil
}

// Boards

func (s *Store) AddBoard(_ context.Context, moderator string) (*model.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 0; attempt < 5; attempt++ {
		code, err := utils.GenerateBoardCode()
		if err != nil {
			return nil, err
		}
		if _, taken := s.boards[code]; taken {
			continue
		}

		board := &model.Board{
			ID:        primitive.NewObjectID(),
			BoardID:   code,
			Moderator: moderator,
			Ideas:     []primitive.ObjectID{},
			Date:      s.now(),
		}
		if err := utils.Validate.Struct(board); err != nil {
			return nil, repository.ErrInvalidBoard
		}
		s.boards[code] = board
		return copyBoard(board), nil
	}
	return nil, repository.ErrBoardCodeExhausted
}

// PutBoard stores board as is, for tests that need a known code.
func (s *Store) PutBoard(board *model.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if board.Ideas == nil {
		board.Ideas = []primitive.ObjectID{}
	}
	s.boards[board.BoardID] = copyBoard(board)
}

func (s *Store) FindBoard(_ context.Context, boardID string) (*model.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.boards[boardID]
	if !ok {
		return nil, repository.ErrBoardNotFound
	}
	return copyBoard(b), nil
}

func (s *Store) FindBoardsByModerator(_ context.Context, moderator string) ([]*model.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	boards := []*model.Board{}
	for _, b := range s.boards {
		if b.Moderator == moderator {
			boards = append(boards, copyBoard(b))
		}
	}
	sort.SliceStable(boards, func(i, j int) bool {
		return boards[i].Date.After(boards[j].Date)
	})
	return boards, nil
}

func (s *Store) GetBoardIdeas(_ context.Context, boardID string) ([]*model.Idea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.boards[boardID]
	if !ok {
		return nil, repository.ErrBoardNotFound
	}

	// Ideas are appended as they arrive, so walking backwards gives newest first.
	ideas := []*model.Idea{}
	for i := len(b.Ideas) - 1; i >= 0; i-- {
		if idea, ok := s.ideas[b.Ideas[i]]; ok {
			ideas = append(ideas, copyIdea(idea))
		}
	}
	return ideas, nil
}

func (s *Store) AddIdeaToBoard(_ context.Context, boardID string, idea *model.Idea) (*model.Idea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.boards[boardID]
	if !ok {
		return nil, repository.ErrBoardNotFound
	}
	if utf8.RuneCountInString(idea.Content) > utils.MaxContentLen {
		return nil, repository.ErrContentTooLong
	}

	stored := &model.Idea{
		ID:        primitive.NewObjectID(),
		BoardID:   boardID,
		CreatorID: idea.CreatorID,
		Content:   idea.Content,
		Date:      s.now(),
	}
	if err := utils.Validate.Struct(stored); err != nil {
		return nil, repository.ErrInvalidIdea
	}

	s.ideas[stored.ID] = stored
	b.Ideas = append(b.Ideas, stored.ID)
	return copyIdea(stored), nil
}

func (s *Store) RemoveIdeaFromBoard(_ context.Context, boardID, ideaID string) error {
	oid, err := primitive.ObjectIDFromHex(ideaID)
	if err != nil {
		return repository.ErrIdeaNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.boards[boardID]
	if !ok {
		return repository.ErrBoardNotFound
	}
	kept := b.Ideas[:0]
	for _, id := range b.Ideas {
		if id != oid {
			kept = append(kept, id)
		}
	}
	b.Ideas = kept

	if idea, ok := s.ideas[oid]; !ok || idea.BoardID != boardID {
		return repository.ErrIdeaNotFound
	}
	delete(s.ideas, oid)
	return nil
}

func (s *Store) RemoveBoard(_ context.Context, boardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.boards[boardID]; !ok {
		return repository.ErrBoardNotFound
	}
	for id, idea := range s.ideas {
		if idea.BoardID == boardID {
			delete(s.ideas, id)
		}
	}
	delete(s.boards, boardID)
	return nil
}

// IdeaCount reports how many ideas are stored across all boards.
func (s *Store) IdeaCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ideas)
}

// Ideas

func (s *Store) idea(ideaID string) (*model.Idea, error) {
	oid, err := primitive.ObjectIDFromHex(ideaID)
	if err != nil {
		return nil, repository.ErrIdeaNotFound
	}
	idea, ok := s.ideas[oid]
	if !ok {
		return nil, repository.ErrIdeaNotFound
	}
	return idea, nil
}

func (s *Store) FindIdea(_ context.Context, ideaID string) (*model.Idea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idea, err := s.idea(ideaID)
	if err != nil {
		return nil, err
	}
	return copyIdea(idea), nil
}

func (s *Store) AddUpvoteToIdea(_ context.Context, ideaID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idea, err := s.idea(ideaID)
	if err != nil {
		return err
	}
	idea.Meta.UpvoteCount++
	return nil
}

func (s *Store) RemoveUpvoteFromIdea(_ context.Context, ideaID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idea, err := s.idea(ideaID)
	if err != nil {
		return err
	}
	if idea.Meta.UpvoteCount == 0 {
		return repository.ErrNoUpvotes
	}
	idea.Meta.UpvoteCount--
	return nil
}

func (s *Store) SetFlag(_ context.Context, ideaID string, flag bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idea, err := s.idea(ideaID)
	if err != nil {
		return err
	}
	idea.Meta.Flag = flag
	return nil
}

// Sessions

func (s *Store) CreateSession(_ context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *session
	s.sessions[session.SessionID] = &c
	return nil
}

func (s *Store) GetSession(_ context.Context, sessionID string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok || !session.IsActive || s.Clock.Now().After(session.ExpiresAt) {
		return nil, repository.ErrSessionNotFound
	}
	c := *session
	return &c, nil
}

func (s *Store) TouchSession(_ context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.sessions[session.SessionID]
	if !ok {
		return repository.ErrSessionNotFound
	}
	s.Touches++
	session.LastActivityAt = s.now()
	stored.LastActivityAt = session.LastActivityAt
	return nil
}

func (s *Store) EndSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok || !session.IsActive {
		return repository.ErrSessionNotFound
	}
	session.IsActive = false
	return nil
}

func (s *Store) activeSessions(userID string) []*model.Session {
	var active []*model.Session
	now := s.Clock.Now()
	for _, session := range s.sessions {
		if session.UserID == userID && session.IsActive && now.Before(session.ExpiresAt) {
			active = append(active, session)
		}
	}
	return active
}

func (s *Store) CountActiveSessions(_ context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activeSessions(userID)), nil
}

func (s *Store) EndLeastActiveSession(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var oldest *model.Session
	for _, session := range s.activeSessions(userID) {
		if oldest == nil || session.LastActivityAt.Before(oldest.LastActivityAt) {
			oldest = session
		}
	}
	if oldest == nil {
		return repository.ErrSessionNotFound
	}
	oldest.IsActive = false
	return nil
}
