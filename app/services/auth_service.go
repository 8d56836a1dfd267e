package services

import (
	"time"

	"boardhub/app/apperr"
	"boardhub/app/dto"
	jwtutil "boardhub/app/jwt"
	"boardhub/app/models"
	"boardhub/app/repo"
	"boardhub/app/validate"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	accounts *repo.AccountRepository
	boards   *repo.BoardRepository
	signer   *jwtutil.Signer
}

func NewAuthService(accounts *repo.AccountRepository, boards *repo.BoardRepository, signer *jwtutil.Signer) *AuthService {
	return &AuthService{accounts: accounts, boards: boards, signer: signer}
}

// Register creates the profile and account in one transaction. The email is
// stored normalized so later logins match case-insensitively.
func (s *AuthService) Register(req dto.RegisterRequest) (uint, error) {
	email, err := validate.Email(req.Email)
	if err != nil {
		return 0, err
	}
	password, err := validate.Password(req.Password)
	if err != nil {
		return 0, err
	}
	displayName, err := validate.DisplayName(req.DisplayName)
	if err != nil {
		return 0, err
	}
	dob, err := validate.DateOfBirth(req.DateOfBirth)
	if err != nil {
		return 0, err
	}

	count, err := s.accounts.CountByEmail(email)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	if count > 0 {
		return 0, apperr.Conflict(apperr.ReasonEmailRegistered, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, apperr.Internal(err)
	}

	profile := &models.User{DisplayName: displayName, DateOfBirth: dob, Country: req.Country}
	account := &models.Account{Email: email, PasswordHash: string(hash), Role: models.RoleUser}
	if err := s.accounts.CreateWithProfile(profile, account); err != nil {
		return 0, apperr.Internal(err)
	}
	return account.UserID, nil
}

func (s *AuthService) Login(email, password string) (*dto.LoginResponse, error) {
	normalized, err := validate.Email(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	account, err := s.accounts.FindByEmail(normalized)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if account == nil {
		return nil, apperr.Unauthorized(apperr.ReasonInvalidCredentials, "invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, apperr.Unauthorized(apperr.ReasonInvalidCredentials, "invalid email or password")
	}

	profile, err := s.profileOf(account)
	if err != nil {
		return nil, err
	}
	token, err := s.signer.Sign(account.UserID, account.Email, string(account.Role), account.User.DisplayName)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &dto.LoginResponse{Message: "Login successful", Token: token, User: *profile}, nil
}

func (s *AuthService) Profile(userID uint) (*dto.UserProfile, error) {
	account, err := s.accounts.FindByID(userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if account == nil {
		return nil, apperr.NotFound(apperr.ReasonUserNotFound, "user not found")
	}
	return s.profileOf(account)
}

func (s *AuthService) profileOf(account *models.Account) (*dto.UserProfile, error) {
	owned, err := s.boards.CountOwned(account.UserID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &dto.UserProfile{
		UserID:       account.UserID,
		Email:        account.Email,
		Role:         string(account.Role),
		DisplayName:  account.User.DisplayName,
		Age:          validate.Age(account.User.DateOfBirth),
		Country:      account.User.Country,
		DateJoined:   account.User.CreatedAt,
		IsBoardAdmin: owned > 0,
	}, nil
}

// EnsureMaster seeds the configured master account on startup if it is not
// already present. The master is an ordinary persisted account whose role is
// what grants global admin rights.
func (s *AuthService) EnsureMaster(email, password string) error {
	normalized, err := validate.Email(email)
	if err != nil {
		return err
	}
	count, err := s.accounts.CountByEmail(normalized)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	profile := &models.User{DisplayName: "Master", DateOfBirth: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)}
	account := &models.Account{Email: normalized, PasswordHash: string(hash), Role: models.RoleMaster}
	return s.accounts.CreateWithProfile(profile, account)
}
