package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindValidation
	KindConflict
	KindRateLimited
)

// Machine-readable reasons. Each policy denial maps 1:1 to one of these.
const (
	ReasonBoardNotFound      = "board_not_found"
	ReasonMessageNotFound    = "message_not_found"
	ReasonUserNotFound       = "user_not_found"
	ReasonTargetNotFound     = "target_not_found"
	ReasonNotBanned          = "not_banned"
	ReasonBanned             = "banned"
	ReasonFrozenNotMember    = "frozen_not_member"
	ReasonPrivateAccess      = "private_access_denied"
	ReasonFrozenBoard        = "frozen_board"
	ReasonNotMember          = "not_member"
	ReasonAlreadyMember      = "already_member"
	ReasonAlreadyBanned      = "already_banned"
	ReasonPrivateJoin        = "private_join_denied"
	ReasonNotBoardAdmin      = "not_board_admin"
	ReasonSelfBan            = "self_ban"
	ReasonEmailRegistered    = "email_already_registered"
	ReasonInvalidCredentials = "invalid_credentials"
	ReasonInvalidToken       = "invalid_token"
	ReasonInvalidInput       = "invalid_input"
	ReasonRateLimited        = "rate_limited"
	ReasonInternal           = "internal"
)

type Error struct {
	Kind   Kind
	Reason string
	Msg    string
	err    error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Reason
}

func (e *Error) Unwrap() error { return e.err }

func New(kind Kind, reason, msg string) *Error {
	return &Error{Kind: kind, Reason: reason, Msg: msg}
}

func NotFound(reason, msg string) *Error     { return New(KindNotFound, reason, msg) }
func Unauthorized(reason, msg string) *Error { return New(KindUnauthorized, reason, msg) }
func Forbidden(reason, msg string) *Error    { return New(KindForbidden, reason, msg) }
func Validation(msg string) *Error           { return New(KindValidation, ReasonInvalidInput, msg) }
func Conflict(reason, msg string) *Error     { return New(KindConflict, reason, msg) }

// Internal wraps a store or infrastructure failure. The wrapped cause is for
// logs only; callers see an opaque message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Reason: ReasonInternal, Msg: "internal error", err: err}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func ReasonOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ReasonInternal
}

func Status(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
