package controllers

import (
	"encoding/json"
	"net/http"

	"boardhub/app/dto"
	"boardhub/app/middleware"
	"boardhub/app/models"
	"boardhub/app/services"
)

// MasterController serves the global administration routes; the router
// mounts it behind RequireMaster.
type MasterController struct {
	Accounts *services.AccountService
	Boards   *services.BoardService
}

func NewMasterController(accounts *services.AccountService, boards *services.BoardService) *MasterController {
	return &MasterController{Accounts: accounts, Boards: boards}
}

func (c *MasterController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Accounts.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (c *MasterController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUint(r, "userID")
	if !ok {
		badRequest(w, "invalid user ID")
		return
	}
	var req dto.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	user, err := c.Accounts.Update(userID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "User updated successfully", "user": user})
}

// UpdateBoard is the master variant of the board patch: it accepts admin
// reassignment.
func (c *MasterController) UpdateBoard(w http.ResponseWriter, r *http.Request) {
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
