package services

import (
	"boardhub/app/apperr"
	"boardhub/app/dto"
	"boardhub/app/models"
	"boardhub/app/repo"
	"boardhub/app/validate"
)

// AccountService backs the master-only account administration routes.
type AccountService struct {
	accounts *repo.AccountRepository
	boards   *repo.BoardRepository
	messages *repo.MessageRepository
}

func NewAccountService(accounts *repo.AccountRepository, boards *repo.BoardRepository, messages *repo.MessageRepository) *AccountService {
	return &AccountService{accounts: accounts, boards: boards, messages: messages}
}

func (s *AccountService) ListAll() ([]dto.AccountSummary, error) {
	accounts, err := s.accounts.ListAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	out := make([]dto.AccountSummary, 0, len(accounts))
	for i := range accounts {
		a := &accounts[i]
		owned, err := s.boards.ListOwned(a.UserID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		recent, err := s.messages.ListRecentByAuthor(a.UserID, recentMessageLimit)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		summary := dto.AccountSummary{
			UserID:       a.UserID,
			Email:        a.Email,
			Role:         string(a.Role),
			DisplayName:  a.User.DisplayName,
			Country:      a.User.Country,
			DateOfBirth:  a.User.DateOfBirth,
			IsBoardAdmin: len(owned) > 0,
			BoardCount:   len(owned),
			Boards:       BoardViews(owned),
		}
		for _, m := range recent {
			summary.RecentMessages = append(summary.RecentMessages, dto.MasterMessage{
				ID: m.ID, Text: m.Text, BoardID: m.BoardID, Timestamp: m.CreatedAt,
			})
		}
		out = append(out, summary)
	}
	return out, nil
}

// Update applies a partial patch to any account and its profile. The email,
// when changed, is normalized and must stay unique.
func (s *AccountService) Update(targetID uint, patch dto.UpdateAccountRequest) (*dto.AccountSummary, error) {
	account, err := s.accounts.FindByID(targetID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if account == nil {
		return nil, apperr.NotFound(apperr.ReasonUserNotFound, "user not found")
	}

	if patch.Email != nil {
		email, err := validate.Email(*patch.Email)
		if err != nil {
			return nil, err
		}
		if email != account.Email {
			count, err := s.accounts.CountByEmail(email)
			if err != nil {
				return nil, apperr.Internal(err)
			}
			if count > 0 {
				return nil, apperr.Conflict(apperr.ReasonEmailRegistered, "email already registered")
			}
			account.Email = email
		}
	}
	if patch.Role != nil {
		role := models.Role(*patch.Role)
		if !role.Valid() {
			return nil, apperr.Validation("role must be user or master")
		}
		account.Role = role
	}
	if patch.DisplayName != nil {
		name, err := validate.DisplayName(*patch.DisplayName)
		if err != nil {
			return nil, err
		}
		account.User.DisplayName = name
	}
	if patch.Country != nil {
		account.User.Country = *patch.Country
	}
	if patch.DateOfBirth != nil {
		dob, err := validate.DateOfBirth(*patch.DateOfBirth)
		if err != nil {
			return nil, err
		}
		account.User.DateOfBirth = dob
	}

	if err := s.accounts.SaveProfile(&account.User); err != nil {
		return nil, apperr.Internal(err)
	}
	if err := s.accounts.Save(account); err != nil {
		return nil, apperr.Internal(err)
	}

	return &dto.AccountSummary{
		UserID:      account.UserID,
		Email:       account.Email,
		Role:        string(account.Role),
		DisplayName: account.User.DisplayName,
		Country:     account.User.Country,
		DateOfBirth: account.User.DateOfBirth,
	}, nil
}
