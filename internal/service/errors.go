package service

import "errors"

var (
	// Session engine.
	ErrNoQuestions          = errors.New("no questions available for this subject")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionForbidden     = errors.New("session belongs to another user")
	ErrQuestionNotInSession = errors.New("question is not part of this session")
	ErrInvalidOption        = errors.New("selected option is not one of the question's options")

	// Community engine.
	ErrPostNotFound       = errors.New("post not found")
	ErrNotPostAuthor      = errors.New("only the post author may delete it")
	ErrInvalidVoteType    = errors.New("vote type must be up or down")
	ErrPointsGrantFailed  = errors.New("points grant failed")
	ErrNameChangeTooSoon  = errors.New("display name can only be changed every 60 days")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
