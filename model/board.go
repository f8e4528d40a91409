package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Board is a shared idea-collection session identified by a short code.
type Board struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	BoardID   string               `bson:"boardId" json:"boardId" validate:"required,boardcode"`
	Moderator string               `bson:"moderator" json:"moderator" validate:"required"`
	Ideas     []primitive.ObjectID `bson:"ideas" json:"ideas"`
	Date      time.Time            `bson:"date" json:"date"`
}

// IsModerator reports whether userID owns the board.
func (b *Board) IsModerator(userID string) bool {
	return userID != "" && b.Moderator == userID
}
