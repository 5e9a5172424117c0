package service

import "errors"

// Sentinel errors controllers map to HTTP status codes.
var (
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrParticipantNotFound = errors.New("participant not found in this session")
	ErrQuestionNotInQuiz   = errors.New("question does not belong to this session's quiz")
	ErrSessionNotJoinable  = errors.New("session is not accepting participants")
	ErrSessionClosed       = errors.New("session is not accepting answers")
	ErrNicknameTaken       = errors.New("nickname is already taken in this session")
	ErrDuplicateAnswer     = errors.New("answer already submitted for this question")
	ErrInvalidTransition   = errors.New("invalid session status transition")
	ErrSessionNotCompleted = errors.New("session is not completed yet")
)
