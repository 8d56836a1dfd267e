package dto

import "time"

type PostMessageRequest struct {
	BoardID     uint   `json:"boardId"`
	MessageText string `json:"messageText"`
	UserIDs     string `json:"userIds"`
}

type ReplyRequest struct {
	MessageText string `json:"messageText"`
}

type MessageAuthor struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type MessageView struct {
	ID        uint          `json:"id"`
	Text      string        `json:"text"`
	Author    MessageAuthor `json:"author"`
	Timestamp time.Time     `json:"timestamp"`
}

type BoardMessagesView struct {
	BoardID        uint          `json:"boardId"`
	BoardName      string        `json:"boardName"`
	IsPublic       bool          `json:"isPublic"`
	MessageCount   int           `json:"messageCount"`
	LatestMessages []MessageView `json:"latestMessages"`
}

// ReplyView echoes the original message; replies are a response-level
// convention, not a persisted parent link.
type ReplyView struct {
	Message   MessageView `json:"message"`
	InReplyTo struct {
		ID   uint   `json:"id"`
		Text string `json:"text"`
	} `json:"inReplyTo"`
}
