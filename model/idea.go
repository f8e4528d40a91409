package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnonymousCreator is the creator id recorded for ideas submitted without a session.
const AnonymousCreator = "anonymous"

type IdeaMeta struct {
	UpvoteCount int  `bson:"upvote_count" json:"upvote_count" validate:"gte=0"`
	Flag        bool `bson:"flag" json:"flag"`
}

type Idea struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BoardID   string             `bson:"boardId" json:"boardId" validate:"required,max=6"`
	CreatorID string             `bson:"creatorId" json:"creatorId" validate:"required"`
	Content   string             `bson:"content" json:"content" validate:"required,min=1,max=140"`
	Meta      IdeaMeta           `bson:"meta" json:"meta"`
	Date      time.Time          `bson:"date" json:"date"`
}
