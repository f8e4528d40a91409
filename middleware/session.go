package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"ideaboard/model"
	"ideaboard/repository"
	"ideaboard/utils"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "session_id"

	sessionKey  = "session"
	userIDKey   = "user_id"
	usernameKey = "username"
)

type SessionStore interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	TouchSession(ctx context.Context, session *model.Session) error
	EndSession(ctx context.Context, sessionID string) error
	CountActiveSessions(ctx context.Context, userID string) (int, error)
	EndLeastActiveSession(ctx context.Context, userID string) error
}

type SessionOptions struct {
	Duration      time.Duration
	IdleLimit     time.Duration
	MaxActive     int
	SecureCookies bool
}

// Sessions manages cookie-backed server-side sessions.
type Sessions struct {
	Store   SessionStore
	Options SessionOptions
}

func NewSessions(store SessionStore, opts SessionOptions) *Sessions {
	return &Sessions{Store: store, Options: opts}
}

// Middleware loads the session named by the cookie, if any, and records activity.
// Requests without a usable session continue unauthenticated.
func (s *Sessions) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		session, err := s.Store.GetSession(ctx, sessionID)
		if err != nil {
			if !errors.Is(err, repository.ErrSessionNotFound) {
				log.Printf("Failed to load session: %v", err)
			}
			s.clearCookie(c)
			c.Next()
			return
		}

		if s.Options.IdleLimit > 0 && time.Since(session.LastActivityAt) > s.Options.IdleLimit {
			if err := s.Store.EndSession(ctx, session.SessionID); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
				log.Printf("Failed to end idle session: %v", err)
			}
			s.clearCookie(c)
			c.Next()
			return
		}

		if err := s.Store.TouchSession(ctx, session); err != nil {
			log.Printf("Failed to update session activity: %v", err)
		}

		c.Set(sessionKey, session)
		c.Set(userIDKey, session.UserID)
		c.Set(usernameKey, session.Username)
		c.Next()
	}
}

// Start opens a session for the user and hands the cookie to the client. When the
// user is at the session limit the least recently used session is ended first.
func (s *Sessions) Start(c *gin.Context, userID, username string) (*model.Session, error) {
	ctx := c.Request.Context()

	if s.Options.MaxActive > 0 {
		count, err := s.Store.CountActiveSessions(ctx, userID)
		if err != nil {
			return nil, err
		}
		if count >= s.Options.MaxActive {
			if err := s.Store.EndLeastActiveSession(ctx, userID); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
				return nil, err
			}
		}
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	session := &model.Session{
		SessionID:      utils.GenerateSessionID(),
		UserID:         userID,
		Username:       username,
		CreatedAt:      now,
		ExpiresAt:      now.Add(s.Options.Duration),
		LastActivityAt: now,
		DeviceInfo:     utils.DeviceInfo(c.Request.UserAgent()),
		IPAddress:      c.ClientIP(),
		IsActive:       true,
	}
	if err := s.Store.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, session.SessionID, int(s.Options.Duration.Seconds()), "/", "", s.Options.SecureCookies, true)

	c.Set(sessionKey, session)
	c.Set(userIDKey, userID)
	c.Set(usernameKey, username)
	return session, nil
}

// End closes the current session, if there is one, and clears the cookie.
func (s *Sessions) End(c *gin.Context) error {
	defer s.clearCookie(c)

	session := CurrentSession(c)
	if session == nil {
		return nil
	}
	err := s.Store.EndSession(c.Request.Context(), session.SessionID)
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return err
	}
	return nil
}

func (s *Sessions) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", s.Options.SecureCookies, true)
}

func CurrentSession(c *gin.Context) *model.Session {
	if v, ok := c.Get(sessionKey); ok {
		if session, ok := v.(*model.Session); ok {
			return session
		}
	}
	return nil
}

// CurrentUser returns the caller's id and name from the session or bearer token.
func CurrentUser(c *gin.Context) (userID, username string, ok bool) {
	userID = c.GetString(userIDKey)
	username = c.GetString(usernameKey)
	return userID, username, userID != ""
}
