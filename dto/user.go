package dto

import "ideaboard/model"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=32"`
	Password string `json:"password" binding:"required,password"`
}

// LoginRequest does not apply the password rule so that failed logins all look alike.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SaveBoardRequest struct {
	BoardID string `json:"boardId" binding:"required,boardcode"`
}

type SessionResponse struct {
	LoggedIn bool               `json:"loggedIn"`
	User     *model.SessionUser `json:"user,omitempty"`
}
