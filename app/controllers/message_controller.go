package controllers

import (
	"encoding/json"
	"net/http"

	"boardhub/app/dto"
	"boardhub/app/middleware"
	"boardhub/app/services"
)

type MessageController struct {
	Messages *services.MessageService
}

func NewMessageController(messages *services.MessageService) *MessageController {
	return &MessageController{Messages: messages}
}

func (c *MessageController) ListAccessible(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	boards, err := c.Messages.ListAccessible(claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"accessibleBoards": boards})
}

func (c *MessageController) ListBoard(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	boardID, ok := pathUint(r, "boardID")
	if !ok {
		badRequest(w, "invalid board ID")
		return
	}
	messages, err := c.Messages.ListBoard(boardID, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

func (c *MessageController) Post(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	var req dto.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.BoardID == 0 {
		badRequest(w, "invalid board ID")
		return
	}
	msg, err := c.Messages.Post(req.BoardID, claims.UserID, req.MessageText, req.UserIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Message posted successfully",
		"id":      msg.ID,
		"boardId": msg.BoardID,
	})
}

func (c *MessageController) Reply(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	messageID, ok := pathUint(r, "messageID")
	if !ok {
		badRequest(w, "invalid message ID")
		return
	}
	var req dto.ReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	reply, err := c.Messages.Reply(messageID, claims.UserID, req.MessageText)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reply)
}
