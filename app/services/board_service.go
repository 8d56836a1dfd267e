package services

import (
	"time"

	"boardhub/app/apperr"
	"boardhub/app/dto"
	"boardhub/app/models"
	"boardhub/app/policy"
	"boardhub/app/repo"
	"boardhub/app/validate"
)

type BoardService struct {
	boards   *repo.BoardRepository
	members  *repo.MembershipRepository
	bans     *repo.BanRepository
	accounts *repo.AccountRepository
}

func NewBoardService(boards *repo.BoardRepository, members *repo.MembershipRepository, bans *repo.BanRepository, accounts *repo.AccountRepository) *BoardService {
	return &BoardService{boards: boards, members: members, bans: bans, accounts: accounts}
}

// standing gathers the membership/ban rows the policy functions take as input.
func (s *BoardService) standing(boardID, userID uint) (policy.Standing, error) {
	m, err := s.members.Find(boardID, userID)
	if err != nil {
		return policy.Standing{}, apperr.Internal(err)
	}
	b, err := s.bans.Find(boardID, userID)
	if err != nil {
		return policy.Standing{}, apperr.Internal(err)
	}
	return policy.Standing{Member: m != nil, Banned: b != nil}, nil
}

func (s *BoardService) Create(adminID uint, title string, isPrivate bool) (*models.Board, error) {
	name, err := validate.BoardName(title)
	if err != nil {
		return nil, err
	}
	visibility := models.VisibilityPublic
	if isPrivate {
		visibility = models.VisibilityPrivate
	}
	board := &models.Board{Name: name, AdminID: adminID, Visibility: visibility, Status: models.StatusActive}
	if err := s.boards.Create(board); err != nil {
		return nil, apperr.Internal(err)
	}
	return board, nil
}

// Update applies a partial patch. Admin reassignment is only passed in from
// the master route and requires the new admin account to exist.
func (s *BoardService) Update(boardID, requester uint, role models.Role, patch dto.UpdateBoardRequest) (*models.Board, error) {
	board, err := s.boards.FindByID(boardID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if err := policy.CanAdminister(board, requester, role); err != nil {
		return nil, err
	}

	if patch.Title != nil {
		name, err := validate.BoardName(*patch.Title)
		if err != nil {
			return nil, err
		}
		board.Name = name
	}
	if patch.IsPrivate != nil {
		board.Visibility = models.VisibilityPublic
		if *patch.IsPrivate {
			board.Visibility = models.VisibilityPrivate
		}
	}
	if patch.Status != nil {
		status := models.Status(*patch.Status)
		if !status.Valid() {
			return nil, apperr.Validation("status must be active or frozen")
		}
		board.Status = status
	}
	if patch.AdminID != nil {
		target, err := s.accounts.FindByID(*patch.AdminID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if target == nil {
			return nil, apperr.NotFound(apperr.ReasonTargetNotFound, "new admin account not found")
		}
		board.AdminID = *patch.AdminID
	}

	if err := s.boards.Save(board); err != nil {
		return nil, apperr.Internal(err)
	}
	return board, nil
}

func (s *BoardService) Delete(boardID, requester uint, role models.Role) error {
	board, err := s.boards.FindByID(boardID)
	if err != nil {
		return apperr.Internal(err)
	}
	if err := policy.CanAdminister(board, requester, role); err != nil {
		return err
	}
	if err := s.boards.Delete(boardID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *BoardService) ListActive() ([]models.Board, error) {
	boards, err := s.boards.ListActive()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return boards, nil
}

func (s *BoardService) ListJoined(userID uint) ([]dto.JoinedBoardView, error) {
	memberships, err := s.members.ListByUser(userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	views := make([]dto.JoinedBoardView, 0, len(memberships))
	for _, m := range memberships {
		views = append(views, dto.JoinedBoardView{
			BoardView: boardView(&m.Board),
			JoinedAt:  m.JoinedAt,
		})
	}
	return views, nil
}

func (s *BoardService) Join(boardID, userID uint) (*models.Membership, error) {
	board, err := s.boards.FindByID(boardID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	var st policy.Standing
	if board != nil {
		if st, err = s.standing(boardID, userID); err != nil {
			return nil, err
		}
	}
	if err := policy.CanJoin(board, userID, st); err != nil {
		return nil, err
	}
	membership := &models.Membership{BoardID: boardID, UserID: userID, JoinedAt: time.Now()}
	if err := s.members.Create(membership); err != nil {
		return nil, apperr.Internal(err)
	}
	return membership, nil
}

// Leave requires an existing membership and nothing else; there is no admin
// gate on leaving.
func (s *BoardService) Leave(boardID, userID uint) error {
	board, err := s.boards.FindByID(boardID)
	if err != nil {
		return apperr.Internal(err)
	}
	if board == nil {
		return apperr.NotFound(apperr.ReasonBoardNotFound, "board not found")
	}
	membership, err := s.members.Find(boardID, userID)
	if err != nil {
		return apperr.Internal(err)
	}
	if membership == nil {
		return apperr.Forbidden(apperr.ReasonNotMember, "you are not a member of this board")
	}
	if err := s.members.Delete(boardID, userID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// AddMember is the admin-invite path: it bypasses the visibility gate that
// CanJoin applies, but still refuses duplicates and banned targets.
func (s *BoardService) AddMember(boardID, requester uint, role models.Role, targetID uint) (*models.Membership, error) {
	board, err := s.boards.FindByID(boardID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if err := policy.CanAdminister(board, requester, role); err != nil {
		return nil, err
	}
	target, err := s.accounts.FindByID(targetID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if target == nil {
		return nil, apperr.NotFound(apperr.ReasonTargetNotFound, "user to add not found")
	}
	st, err := s.standing(boardID, targetID)
	if err != nil {
		return nil, err
	}
	if st.Member {
		return nil, apperr.Conflict(apperr.ReasonAlreadyMember, "user is already a member of this board")
	}
	if st.Banned {
		return nil, apperr.Forbidden(apperr.ReasonAlreadyBanned, "user is banned from this board, unban first")
	}
	membership := &models.Membership{BoardID: boardID, UserID: targetID, JoinedAt: time.Now()}
	if err := s.members.Create(membership); err != nil {
		return nil, apperr.Internal(err)
	}
	return membership, nil
}

// ListMembers is visible to members, the board admin and the master role.
func (s *BoardService) ListMembers(boardID, requester uint, role models.Role) (*dto.BoardMembers, error) {
	board, err := s.boards.FindByID(boardID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if board == nil {
		return nil, apperr.NotFound(apperr.ReasonBoardNotFound, "board not found")
	}
	membership, err := s.members.Find(boardID, requester)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if membership == nil {
		if err := policy.CanAdminister(board, requester, role); err != nil {
			return nil, apperr.Forbidden(apperr.ReasonNotMember, "you must be a member of this board to view its members")
		}
	}

	members, err := s.members.ListByBoard(boardID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	out := &dto.BoardMembers{BoardName: board.Name, Members: make([]dto.MemberView, 0, len(members))}
	for _, m := range members {
		out.Members = append(out.Members, dto.MemberView{
			DisplayName: m.Account.User.DisplayName,
			Age:         validate.Age(m.Account.User.DateOfBirth),
			Country:     m.Account.User.Country,
			DateJoined:  m.JoinedAt,
			IsAdmin:     m.UserID == board.AdminID,
		})
	}
	return out, nil
}

// Ban inserts the ban and drops any membership in one transaction. Banning
// yourself is forbidden even for the board admin.
func (s *BoardService) Ban(boardID, requester uint, role models.Role, targetID uint, reason string) (*dto.BannedUserView, error) {
	board, err := s.boards.FindByID(boardID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if err := policy.CanAdminister(board, requester, role); err != nil {
		return nil, err
	}
	if targetID == requester {
		return nil, apperr.Forbidden(apperr.ReasonSelfBan, "you cannot ban yourself from your own board")
	}
	target, err := s.accounts.FindByID(targetID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if target == nil {
		return nil, apperr.NotFound(apperr.ReasonTargetNotFound, "user to ban not found")
	}
	existing, err := s.bans.Find(boardID, targetID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Forbidden(apperr.ReasonAlreadyBanned, "user is already banned from this board")
	}

	if reason == "" {
		reason = "No reason provided"
	}
	ban := &models.Ban{BoardID: boardID, UserID: targetID, Reason: reason}
	if err := s.bans.BanMember(ban); err != nil {
		return nil, apperr.Internal(err)
	}
	return &dto.BannedUserView{
		UserID:    targetID,
		UserName:  target.User.DisplayName,
		BoardID:   boardID,
		BoardName: board.Name,
		Reason:    reason,
	}, nil
}

// Unban deletes the ban row. It never restores the membership the ban
// removed.
func (s *BoardService) Unban(boardID, requester uint, role models.Role, targetID uint) error {
	board, err := s.boards.FindByID(boardID)
	if err != nil {
		return apperr.Internal(err)
	}
	if err := policy.CanAdminister(board, requester, role); err != nil {
		return err
	}
	existing, err := s.bans.Find(boardID, targetID)
	if err != nil {
		return apperr.Internal(err)
	}
	if existing == nil {
		return apperr.NotFound(apperr.ReasonNotBanned, "user is not banned from this board")
	}
	if err := s.bans.Delete(boardID, targetID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func boardView(b *models.Board) dto.BoardView {
	return dto.BoardView{
		ID:        b.ID,
		Title:     b.Name,
		IsPrivate: b.Visibility == models.VisibilityPrivate,
		Status:    string(b.Status),
		AdminID:   b.AdminID,
		CreatedAt: b.CreatedAt,
	}
}

// BoardViews converts for controllers; kept here so dto stays dumb.
func BoardViews(boards []models.Board) []dto.BoardView {
	views := make([]dto.BoardView, 0, len(boards))
	for i := range boards {
		views = append(views, boardView(&boards[i]))
	}
	return views
}
