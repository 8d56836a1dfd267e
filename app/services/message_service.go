package services

import (
	"boardhub/app/apperr"
	"boardhub/app/dto"
	"boardhub/app/models"
	"boardhub/app/policy"
	"boardhub/app/repo"
	"boardhub/app/validate"
)

// recentMessageLimit bounds the per-board message preview on the overview
// endpoint.
const recentMessageLimit = 5

type MessageService struct {
	boards   *repo.BoardRepository
	members  *repo.MembershipRepository
	bans     *repo.BanRepository
	messages *repo.MessageRepository
}

func NewMessageService(boards *repo.BoardRepository, members *repo.MembershipRepository, bans *repo.BanRepository, messages *repo.MessageRepository) *MessageService {
	return &MessageService{boards: boards, members: members, bans: bans, messages: messages}
}

func (s *MessageService) standing(boardID, userID uint) (policy.Standing, error) {
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

// ListAccessible returns every active board the caller may view, each with
// its most recent messages newest-first. The store query pre-filters by
// visibility/membership/ownership; the view decision still runs per board so
// bans are honored.
func (s *MessageService) ListAccessible(userID uint) ([]dto.BoardMessagesView, error) {
	boards, err := s.boards.ListAccessible(userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	out := make([]dto.BoardMessagesView, 0, len(boards))
	for i := range boards {
		board := &boards[i]
		st, err := s.standing(board.ID, userID)
		if err != nil {
			return nil, err
		}
		if policy.CanView(board, userID, st) != nil {
			continue
		}
		recent, err := s.messages.ListRecentByBoard(board.ID, recentMessageLimit)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		out = append(out, dto.BoardMessagesView{
			BoardID:        board.ID,
			BoardName:      board.Name,
			IsPublic:       board.Visibility == models.VisibilityPublic,
			MessageCount:   len(recent),
			LatestMessages: messageViews(recent),
		})
	}
	return out, nil
}

// ListBoard returns the full thread oldest-first for readers the policy
// admits.
func (s *MessageService) ListBoard(boardID, userID uint) ([]dto.MessageView, error) {
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
	if err := policy.CanView(board, userID, st); err != nil {
		return nil, err
	}
	msgs, err := s.messages.ListByBoard(boardID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return messageViews(msgs), nil
}

func (s *MessageService) Post(boardID, userID uint, text, userIDs string) (*models.Message, error) {
	trimmed, err := validate.MessageText(text)
	if err != nil {
		return nil, err
	}
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
	if err := policy.CanPost(board, userID, st); err != nil {
		return nil, err
	}
	msg := &models.Message{BoardID: boardID, AuthorID: userID, Text: trimmed, UserIDs: userIDs}
	if err := s.messages.Create(msg); err != nil {
		return nil, apperr.Internal(err)
	}
	return msg, nil
}

// Reply resolves the original message's board and requires view access only:
// replying takes the same access as reading the thread. The original is
// echoed in the response, never linked in storage.
func (s *MessageService) Reply(messageID, userID uint, text string) (*dto.ReplyView, error) {
	trimmed, err := validate.MessageText(text)
	if err != nil {
		return nil, err
	}
	original, err := s.messages.FindByID(messageID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if original == nil {
		return nil, apperr.NotFound(apperr.ReasonMessageNotFound, "message not found")
	}
	board, err := s.boards.FindByID(original.BoardID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	var st policy.Standing
	if board != nil {
		if st, err = s.standing(board.ID, userID); err != nil {
			return nil, err
		}
	}
	if err := policy.CanView(board, userID, st); err != nil {
		return nil, err
	}
	reply := &models.Message{BoardID: original.BoardID, AuthorID: userID, Text: trimmed}
	if err := s.messages.Create(reply); err != nil {
		return nil, apperr.Internal(err)
	}
	// re-read to pick up the author profile for the response
	created, err := s.messages.FindByID(reply.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if created != nil {
		reply = created
	}
	view := &dto.ReplyView{Message: messageView(reply)}
	view.InReplyTo.ID = original.ID
	view.InReplyTo.Text = original.Text
	return view, nil
}

func messageView(m *models.Message) dto.MessageView {
	return dto.MessageView{
		ID:   m.ID,
		Text: m.Text,
		Author: dto.MessageAuthor{
			ID:      m.AuthorID,
			Name:    m.Author.User.DisplayName,
			Country: m.Author.User.Country,
		},
		Timestamp: m.CreatedAt,
	}
}

func messageViews(msgs []models.Message) []dto.MessageView {
	views := make([]dto.MessageView, 0, len(msgs))
	for i := range msgs {
		views = append(views, messageView(&msgs[i]))
	}
	return views
}
