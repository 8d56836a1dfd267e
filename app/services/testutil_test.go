package services

import (
	"fmt"
	"testing"
	"time"

	jwtutil "boardhub/app/jwt"
	"boardhub/app/models"
	"boardhub/app/repo"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	accounts *repo.AccountRepository
	boards   *repo.BoardRepository
	members  *repo.MembershipRepository
	bans     *repo.BanRepository
	messages *repo.MessageRepository

	auth     *AuthService
	boardSvc *BoardService
	msgSvc   *MessageService
	acctSvc  *AccountService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// one shared in-memory database per test, named so parallel tests
	// cannot see each other's tables
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{}, &models.Account{}, &models.Board{},
		&models.Membership{}, &models.Ban{}, &models.Message{},
	))

	env := &testEnv{
		db:       gdb,
		accounts: repo.NewAccountRepository(gdb),
		boards:   repo.NewBoardRepository(gdb),
		members:  repo.NewMembershipRepository(gdb),
		bans:     repo.NewBanRepository(gdb),
		messages: repo.NewMessageRepository(gdb),
	}
	signer := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "boardhub-test", ExpMin: 60}
	env.auth = NewAuthService(env.accounts, env.boards, signer)
	env.boardSvc = NewBoardService(env.boards, env.members, env.bans, env.accounts)
	env.msgSvc = NewMessageService(env.boards, env.members, env.bans, env.messages)
	env.acctSvc = NewAccountService(env.accounts, env.boards, env.messages)
	return env
}

var testHash = func() string {
	h, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd"), bcrypt.MinCost)
	return string(h)
}()

func (e *testEnv) newAccount(t *testing.T, email string, role models.Role) uint {
	t.Helper()
	profile := &models.User{
		DisplayName: "user " + email,
		DateOfBirth: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		Country:     "NL",
	}
	account := &models.Account{Email: email, PasswordHash: testHash, Role: role}
	require.NoError(t, e.accounts.CreateWithProfile(profile, account))
	return account.UserID
}

func (e *testEnv) countBans(t *testing.T, boardID, userID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&models.Ban{}).Where("board_id = ? AND user_id = ?", boardID, userID).Count(&n).Error)
	return n
}
