package controllers

import (
	"encoding/json"
	"net/http"

	"boardhub/app/dto"
	"boardhub/app/middleware"
	"boardhub/app/models"
	"boardhub/app/services"
)

type BoardController struct {
	Boards *services.BoardService
}

func NewBoardController(boards *services.BoardService) *BoardController {
	return &BoardController{Boards: boards}
}

func (c *BoardController) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	var req dto.CreateBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	board, err := c.Boards.Create(claims.UserID, req.Title, req.IsPrivate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Board created successfully",
		"board":   services.BoardViews([]models.Board{*board})[0],
	})
}

func (c *BoardController) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	boardID, ok := pathUint(r, "boardID")
	if !ok {
		badRequest(w, "invalid board ID")
		return
	}
	var req dto.UpdateBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	// admin reassignment is reserved for the master route
	req.AdminID = nil
	board, err := c.Boards.Update(boardID, claims.UserID, models.Role(claims.Role), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Board updated successfully",
		"board":   services.BoardViews([]models.Board{*board})[0],
	})
}

func (c *BoardController) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	boardID, ok := pathUint(r, "boardID")
	if !ok {
		badRequest(w, "invalid board ID")
		return
	}
	if err := c.Boards.Delete(boardID, claims.UserID, models.Role(claims.Role)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Board deleted successfully"})
}

func (c *BoardController) List(w http.ResponseWriter, r *http.Request) {
	boards, err := c.Boards.ListActive()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"boards": services.BoardViews(boards)})
}

func (c *BoardController) ListJoined(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	boards, err := c.Boards.ListJoined(claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"boards": boards})
}

func (c *BoardController) Join(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	boardID, ok := pathUint(r, "boardID")
	if !ok {
		badRequest(w, "invalid board ID")
		return
	}
	membership, err := c.Boards.Join(boardID, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Successfully joined the board",
		"membership": dto.MembershipView{
			BoardID:  membership.BoardID,
			UserID:   membership.UserID,
			JoinedAt: membership.JoinedAt,
		},
	})
}

func (c *BoardController) Leave(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	boardID, ok := pathUint(r, "boardID")
	if !ok {
		badRequest(w, "invalid board ID")
		return
	}
	if err := c.Boards.Leave(boardID, claims.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Successfully left the board", "boardId": boardID})
}

func (c *BoardController) AddMember(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	boardID, ok := pathUint(r, "boardID")
	if !ok {
		badRequest(w, "invalid board ID")
		return
	}
	var req dto.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == 0 {
		badRequest(w, "invalid board ID or user ID")
		return
	}
	membership, err := c.Boards.AddMember(boardID, claims.UserID, models.Role(claims.Role), req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Successfully added member to the board",
		"membership": dto.MembershipView{
			BoardID:  membership.BoardID,
			UserID:   membership.UserID,
			JoinedAt: membership.JoinedAt,
		},
	})
}

func (c *BoardController) ListMembers(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	boardID, ok := pathUint(r, "boardID")
	if !ok {
		badRequest(w, "invalid board ID")
		return
	}
	members, err := c.Boards.ListMembers(boardID, claims.UserID, models.Role(claims.Role))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (c *BoardController) Ban(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	boardID, ok := pathUint(r, "boardID")
	if !ok {
		badRequest(w, "invalid board ID")
		return
	}
	targetID, ok := pathUint(r, "userID")
	if !ok {
		badRequest(w, "invalid user ID")
		return
	}
	var req dto.BanRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	banned, err := c.Boards.Ban(boardID, claims.UserID, models.Role(claims.Role), targetID, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "User banned from board successfully",
		"bannedUser": banned,
	})
}

func (c *BoardController) Unban(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	boardID, ok := pathUint(r, "boardID")
	if !ok {
		badRequest(w, "invalid board ID")
		return
	}
	targetID, ok := pathUint(r, "userID")
	if !ok {
		badRequest(w, "invalid user ID")
		return
	}
	if err := c.Boards.Unban(boardID, claims.UserID, models.Role(claims.Role), targetID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User unbanned from board successfully"})
}
