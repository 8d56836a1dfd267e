// Package policy holds the board access decisions. Every function is pure:
// it takes the board (nil when absent), the caller and a Standing snapshot of
// the caller's membership/ban rows, and returns nil to allow or exactly one
// tagged denial.
package policy

import (
	"boardhub/app/apperr"
	"boardhub/app/models"
)

// Standing is the caller's recorded relationship to a board. The two flags
// never coexist after a committed ban, but the decisions below do not rely
// on that: a ban always wins.
type Standing struct {
	Member bool
	Banned bool
}

// CanView decides read access to a board and its messages. The admin always
// sees their own board; a ban denies before visibility is even considered.
func CanView(b *models.Board, userID uint, s Standing) error {
	if b == nil {
		return apperr.NotFound(apperr.ReasonBoardNotFound, "board not found")
	}
	if userID == b.AdminID {
		return nil
	}
	if s.Banned {
		return apperr.Forbidden(apperr.ReasonBanned, "you are banned from this board")
	}
	if b.Status == models.StatusFrozen {
		if s.Member {
			return nil
		}
		return apperr.Forbidden(apperr.ReasonFrozenNotMember, "board is frozen")
	}
	if b.Visibility == models.VisibilityPublic {
		return nil
	}
	if s.Member {
		return nil
	}
	return apperr.Forbidden(apperr.ReasonPrivateAccess, "this board is private")
}

// CanPost is stricter than CanView: a frozen board rejects posts outright,
// admin included.
func CanPost(b *models.Board, userID uint, s Standing) error {
	if b == nil {
		return apperr.NotFound(apperr.ReasonBoardNotFound, "board not found")
	}
	if b.Status == models.StatusFrozen {
		return apperr.Forbidden(apperr.ReasonFrozenBoard, "board is frozen")
	}
	if userID == b.AdminID {
		return nil
	}
	if s.Banned {
		return apperr.Forbidden(apperr.ReasonBanned, "you are banned from this board")
	}
	if s.Member {
		return nil
	}
	return apperr.Forbidden(apperr.ReasonNotMember, "you are not a member of this board")
}

// CanJoin gates self-service joins. Private boards only admit their admin
// through this path; everyone else goes through the admin add-member route.
func CanJoin(b *models.Board, userID uint, s Standing) error {
	if b == nil {
		return apperr.NotFound(apperr.ReasonBoardNotFound, "board not found")
	}
	if b.Status == models.StatusFrozen {
		return apperr.Forbidden(apperr.ReasonFrozenBoard, "board is frozen")
	}
	if s.Member {
		return apperr.Conflict(apperr.ReasonAlreadyMember, "you are already a member of this board")
	}
	if s.Banned {
		return apperr.Forbidden(apperr.ReasonAlreadyBanned, "you are banned from this board")
	}
	if b.Visibility == models.VisibilityPrivate && userID != b.AdminID {
		return apperr.Forbidden(apperr.ReasonPrivateJoin, "only the board admin can add members to a private board")
	}
	return nil
}

// CanAdminister gates board mutation, bans and direct member adds. The
// master role overrides ownership on any board; no email comparison.
func CanAdminister(b *models.Board, userID uint, role models.Role) error {
	if b == nil {
		return apperr.NotFound(apperr.ReasonBoardNotFound, "board not found")
	}
	if role == models.RoleMaster {
		return nil
	}
	if userID == b.AdminID {
		return nil
	}
	return apperr.Forbidden(apperr.ReasonNotBoardAdmin, "only the board admin can do this")
}
