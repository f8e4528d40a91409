package dto

// CreateIdeaRequest leaves the upper length bound to the idea store, which counts runes
// and answers with its own message.
type CreateIdeaRequest struct {
	Content string `json:"content" binding:"required"`
}

// FlagRequest uses a pointer so an explicit false is told apart from a missing field.
type FlagRequest struct {
	Flag *bool `json:"flag" binding:"required"`
}
