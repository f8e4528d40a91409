package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"ideaboard/model"
	"ideaboard/repository"
	"ideaboard/services"
	"ideaboard/utils"
)

type UserService struct {
	Users  UserStore
	Boards BoardStore
}

func NewUserService(users UserStore, boards BoardStore) *UserService {
	return &UserService{Users: users, Boards: boards}
}

// Register stores a new user with an argon2id hash of password.
func (s *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if !utils.ValidatePassword(password) {
		return nil, ErrWeakPassword
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		UserID:   utils.GenerateUserID(),
		Username: username,
		Password: hashed,
		Boards:   []string{},
	}
	if err := s.Users.AddUser(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("Registered user %s", user.UserID)
	return user, nil
}

// Verify checks the credentials. Unknown users and wrong passwords both report
// ok=false with a nil error so callers cannot tell them apart.
func (s *UserService) Verify(ctx context.Context, username, password string) (bool, *model.User, error) {
	user, err := s.Users.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil, nil
		}
		return false, nil, err
	}

	ok, err := services.VerifyPassword(user.Password, password)
	if err != nil {
		return false, nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return false, nil, nil
	}
	return true, user, nil
}

func (s *UserService) SavedBoards(ctx context.Context, userID string) ([]string, error) {
	return s.Users.GetBoardsFromUser(ctx, userID)
}

// SaveBoard adds an existing board to the user's saved list.
func (s *UserService) SaveBoard(ctx context.Context, userID, boardID string) (string, error) {
	code := utils.NormalizeBoardCode(boardID)
	if _, err := s.Boards.FindBoard(ctx, code); err != nil {
		return "", err
	}
	if err := s.Users.AddBoardToUser(ctx, userID, code); err != nil {
		return "", err
	}
	return code, nil
}

func (s *UserService) UnsaveBoard(ctx context.Context, userID, boardID string) error {
	return s.Users.RemoveBoardFromUser(ctx, userID, utils.NormalizeBoardCode(boardID))
}
