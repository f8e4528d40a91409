package model

import "time"

type User struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Username  string    `bson:"username" json:"username" validate:"required,min=1,max=32"`
	Password  string    `bson:"password" json:"-" validate:"required"` // argon2id hash
	Boards    []string  `bson:"boards" json:"boards"`                  // saved board codes
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
