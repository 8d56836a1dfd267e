package services

import (
	"testing"

	"boardhub/app/apperr"
	"boardhub/app/dto"
	"boardhub/app/models"

	"github.com/stretchr/testify/require"
)

func requireReason(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, reason, apperr.ReasonOf(err))
}

func TestCreateBoard_ValidatesName(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newAccount(t, "admin@test.local", models.RoleUser)

	_, err := env.boardSvc.Create(admin, "ab", false)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	board, err := env.boardSvc.Create(admin, "  general  ", false)
	require.NoError(t, err)
	require.Equal(t, "general", board.Name)
	require.Equal(t, models.StatusActive, board.Status)
	require.Equal(t, admin, board.AdminID)
}

// Public board flow: join, post, ban, then the banned user loses access even
// though the board is public.
func TestPublicBoard_JoinPostBan(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newAccount(t, "a@test.local", models.RoleUser)
	x := env.newAccount(t, "x@test.local", models.RoleUser)

	board, err := env.boardSvc.Create(admin, "public board", false)
	require.NoError(t, err)

	_, err = env.boardSvc.Join(board.ID, x)
	require.NoError(t, err)

	_, err = env.msgSvc.Post(board.ID, x, "hello", "")
	require.NoError(t, err)

	_, err = env.boardSvc.Ban(board.ID, admin, models.RoleUser, x, "spamming")
	require.NoError(t, err)

	_, err = env.msgSvc.ListBoard(board.ID, x)
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	requireReason(t, err, apperr.ReasonBanned)
}

// After a successful ban the membership row is gone and exactly one ban row
// exists: never both present, never both absent.
func TestBan_AtomicWithMembershipRemoval(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newAccount(t, "a@test.local", models.RoleUser)
	x := env.newAccount(t, "x@test.local", models.RoleUser)

	board, err := env.boardSvc.Create(admin, "the board", false)
	require.NoError(t, err)
	_, err = env.boardSvc.Join(board.ID, x)
	require.NoError(t, err)

	_, err = env.boardSvc.Ban(board.ID, admin, models.RoleUser, x, "")
	require.NoError(t, err)

	m, err := env.members.Find(board.ID, x)
	require.NoError(t, err)
	require.Nil(t, m, "banned user must not remain a member")

	b, err := env.bans.Find(board.ID, x)
	require.NoError(t, err)
	require.NotNil(t, b)
	require.Equal(t, "No reason provided", b.Reason)
	require.EqualValues(t, 1, env.countBans(t, board.ID, x))
}

func TestBan_SelfBanForbidden(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newAccount(t, "a@test.local", models.RoleUser)

	board, err := env.boardSvc.Create(admin, "my board", false)
	require.NoError(t, err)

	_, err = env.boardSvc.Ban(board.ID, admin, models.RoleUser, admin, "oops")
	requireReason(t, err, apperr.ReasonSelfBan)
	require.EqualValues(t, 0, env.countBans(t, board.ID, admin))
}

func TestBan_TargetChecks(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newAccount(t, "a@test.local", models.RoleUser)
	x := env.newAccount(t, "x@test.local", models.RoleUser)

	board, err := env.boardSvc.Create(admin, "the board", false)
	require.NoError(t, err)

	_, err = env.boardSvc.Ban(board.ID, admin, models.RoleUser, 9999, "")
	requireReason(t, err, apperr.ReasonTargetNotFound)

	_, err = env.boardSvc.Ban(board.ID, x, models.RoleUser, admin, "")
	requireReason(t, err, apperr.ReasonNotBoardAdmin)

	_, err = env.boardSvc.Ban(board.ID, admin, models.RoleUser, x, "")
	require.NoError(t, err)
	_, err = env.boardSvc.Ban(board.ID, admin, models.RoleUser, x, "")
	requireReason(t, err, apperr.ReasonAlreadyBanned)
}

// Unban then immediate reban leaves exactly one ban row and does not restore
// the membership.
func TestUnbanThenReban(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newAccount(t, "a@test.local", models.RoleUser)
	x := env.newAccount(t, "x@test.local", models.RoleUser)

	board, err := env.boardSvc.Create(admin, "the board", false)
	require.NoError(t, err)
	_, err = env.boardSvc.Join(board.ID, x)
	require.NoError(t, err)

	_, err = env.boardSvc.Ban(board.ID, admin, models.RoleUser, x, "first")
	require.NoError(t, err)

	require.NoError(t, env.boardSvc.Unban(board.ID, admin, models.RoleUser, x))
	require.EqualValues(t, 0, env.countBans(t, board.ID, x))

	m, err := env.members.Find(board.ID, x)
	require.NoError(t, err)
	require.Nil(t, m, "unban must not restore membership")

	_, err = env.boardSvc.Ban(board.ID, admin, models.RoleUser, x, "second")
	require.NoError(t, err)
	require.EqualValues(t, 1, env.countBans(t, board.ID, x))

	err = env.boardSvc.Unban(board.ID, admin, models.RoleUser, admin)
	requireReason(t, err, apperr.ReasonNotBanned)
}

// Private board: self-join denied, admin add-member path succeeds, then the
// added member can view.
func TestPrivateBoard_AddMemberFlow(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newAccount(t, "a@test.local", models.RoleUser)
	y := env.newAccount(t, "y@test.local", models.RoleUser)

	board, err := env.boardSvc.Create(admin, "private board", true)
	require.NoError(t, err)

	_, err = env.boardSvc.Join(board.ID, y)
	requireReason(t, err, apperr.ReasonPrivateJoin)

	_, err = env.msgSvc.ListBoard(board.ID, y)
	requireReason(t, err, apperr.ReasonPrivateAccess)

	_, err = env.boardSvc.AddMember(board.ID, admin, models.RoleUser, y)
	require.NoError(t, err)

	_, err = env.msgSvc.ListBoard(board.ID, y)
	require.NoError(t, err)
}

func TestAddMember_Guards(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newAccount(t, "a@test.local", models.RoleUser)
	y := env.newAccount(t, "y@test.local", models.RoleUser)

	board, err := env.boardSvc.Create(admin, "private board", true)
	require.NoError(t, err)

	_, err = env.boardSvc.AddMember(board.ID, y, models.RoleUser, y)
	requireReason(t, err, apperr.ReasonNotBoardAdmin)

	_, err = env.boardSvc.AddMember(board.ID, admin, models.RoleUser, 9999)
	requireReason(t, err, apperr.ReasonTargetNotFound)

	_, err = env.boardSvc.AddMember(board.ID, admin, models.RoleUser, y)
	require.NoError(t, err)
	_, err = env.boardSvc.AddMember(board.ID, admin, models.RoleUser, y)
	requireReason(t, err, apperr.ReasonAlreadyMember)

	// a banned target must be unbanned first, not silently re-added
	require.NoError(t, env.boardSvc.Leave(board.ID, y))
	_, err = env.boardSvc.Ban(board.ID, admin, models.RoleUser, y, "")
	require.NoError(t, err)
	_, err = env.boardSvc.AddMember(board.ID, admin, models.RoleUser, y)
	requireReason(t, err, apperr.ReasonAlreadyBanned)
}

func TestLeave(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newAccount(t, "a@test.local", models.RoleUser)
	x := env.newAccount(t, "x@test.local", models.RoleUser)

	board, err := env.boardSvc.Create(admin, "the board", false)
	require.NoError(t, err)

	err = env.boardSvc.Leave(board.ID, x)
	requireReason(t, err, apperr.ReasonNotMember)

	_, err = env.boardSvc.Join(board.ID, x)
	require.NoError(t, err)
	require.NoError(t, env.boardSvc.Leave(board.ID, x))

	err = env.boardSvc.Leave(9999, x)
	requireReason(t, err, apperr.ReasonBoardNotFound)
}

func TestFrozenBoard(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newAccount(t, "a@test.local", models.RoleUser)
	member := env.newAccount(t, "m@test.local", models.RoleUser)
	stranger := env.newAccount(t, "s@test.local", models.RoleUser)

	board, err := env.boardSvc.Create(admin, "the board", false)
	require.NoError(t, err)
	_, err = env.boardSvc.Join(board.ID, member)
	require.NoError(t, err)

	frozen := string(models.StatusFrozen)
	_, err = env.boardSvc.Update(board.ID, admin, models.RoleUser, updateStatus(frozen))
	require.NoError(t, err)

	// posting is rejected outright, admin included
	_, err = env.msgSvc.Post(board.ID, admin, "still here", "")
	requireReason(t, err, apperr.ReasonFrozenBoard)
	_, err = env.msgSvc.Post(board.ID, member, "hello", "")
	requireReason(t, err, apperr.ReasonFrozenBoard)

	// joining is closed to newcomers
	_, err = env.boardSvc.Join(board.ID, stranger)
	requireReason(t, err, apperr.ReasonFrozenBoard)

	// viewing stays open for admin and members only
	_, err = env.msgSvc.ListBoard(board.ID, admin)
	require.NoError(t, err)
	_, err = env.msgSvc.ListBoard(board.ID, member)
	require.NoError(t, err)
	_, err = env.msgSvc.ListBoard(board.ID, stranger)
	requireReason(t, err, apperr.ReasonFrozenNotMember)
}

func TestUpdateBoard_MasterOverride(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newAccount(t, "a@test.local", models.RoleUser)
	master := env.newAccount(t, "master@test.local", models.RoleMaster)
	other := env.newAccount(t, "o@test.local", models.RoleUser)

	board, err := env.boardSvc.Create(admin, "the board", false)
	require.NoError(t, err)

	_, err = env.boardSvc.Update(board.ID, other, models.RoleUser, updateTitle("hijacked"))
	requireReason(t, err, apperr.ReasonNotBoardAdmin)

	updated, err := env.boardSvc.Update(board.ID, master, models.RoleMaster, updateTitle("renamed by master"))
	require.NoError(t, err)
	require.Equal(t, "renamed by master", updated.Name)

	// master route may reassign the admin, but only to an existing account
	patch := updateTitle("renamed again")
	missing := uint(9999)
	patch.AdminID = &missing
	_, err = env.boardSvc.Update(board.ID, master, models.RoleMaster, patch)
	requireReason(t, err, apperr.ReasonTargetNotFound)

	patch.AdminID = &other
	updated, err = env.boardSvc.Update(board.ID, master, models.RoleMaster, patch)
	require.NoError(t, err)
	require.Equal(t, other, updated.AdminID)
}

func TestDeleteBoard_Cascades(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newAccount(t, "a@test.local", models.RoleUser)
	x := env.newAccount(t, "x@test.local", models.RoleUser)

	board, err := env.boardSvc.Create(admin, "doomed", false)
	require.NoError(t, err)
	_, err = env.boardSvc.Join(board.ID, x)
	require.NoError(t, err)
	_, err = env.msgSvc.Post(board.ID, x, "soon gone", "")
	require.NoError(t, err)

	err = env.boardSvc.Delete(board.ID, x, models.RoleUser)
	requireReason(t, err, apperr.ReasonNotBoardAdmin)

	require.NoError(t, env.boardSvc.Delete(board.ID, admin, models.RoleUser))

	b, err := env.boards.FindByID(board.ID)
	require.NoError(t, err)
	require.Nil(t, b)
	m, err := env.members.Find(board.ID, x)
	require.NoError(t, err)
	require.Nil(t, m)
	msgs, err := env.messages.ListByBoard(board.ID)
	require.NoError(t, err)
	require.Empty(t, msgs)
}

func TestListMembers_Gated(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newAccount(t, "a@test.local", models.RoleUser)
	x := env.newAccount(t, "x@test.local", models.RoleUser)
	stranger := env.newAccount(t, "s@test.local", models.RoleUser)

	board, err := env.boardSvc.Create(admin, "the board", false)
	require.NoError(t, err)
	_, err = env.boardSvc.Join(board.ID, x)
	require.NoError(t, err)

	_, err = env.boardSvc.ListMembers(board.ID, stranger, models.RoleUser)
	requireReason(t, err, apperr.ReasonNotMember)

	members, err := env.boardSvc.ListMembers(board.ID, admin, models.RoleUser)
	require.NoError(t, err)
	require.Len(t, members.Members, 1)
	require.Equal(t, "user x@test.local", members.Members[0].DisplayName)
	require.False(t, members.Members[0].IsAdmin)
}

func updateTitle(title string) dto.UpdateBoardRequest {
	return dto.UpdateBoardRequest{Title: &title}
}

func updateStatus(status string) dto.UpdateBoardRequest {
	return dto.UpdateBoardRequest{Status: &status}
}
