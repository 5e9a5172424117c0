package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/saqh5037/quizApp-sub002/internal/dto"
	"github.com/saqh5037/quizApp-sub002/internal/livestate"
	"github.com/saqh5037/quizApp-sub002/internal/model"
	"github.com/saqh5037/quizApp-sub002/internal/repository"
	"gorm.io/gorm"
)

const sessionCodeLength = 6

type SessionService interface {
	CreateSession(ctx context.Context, req dto.SessionCreateDTO) (*dto.SessionResponseDTO, error)
	Join(ctx context.Context, code string, req dto.JoinSessionDTO) (*dto.ParticipantResponseDTO, error)
	Start(ctx context.Context, code string) (*dto.SessionResponseDTO, error)
	Pause(ctx context.Context, code string) (*dto.SessionResponseDTO, error)
	Resume(ctx context.Context, code string) (*dto.SessionResponseDTO, error)
	NextQuestion(ctx context.Context, code string) (*dto.SessionResponseDTO, error)
	Complete(ctx context.Context, code string) (*dto.SessionResponseDTO, error)
	GetState(ctx context.Context, code string) (*dto.SessionStateDTO, error)
}

type sessionService struct {
	sessionRepo     repository.SessionRepository
	quizRepo        repository.QuizRepository
	participantRepo repository.ParticipantRepository
	state           *livestate.Store
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	quizRepo repository.QuizRepository,
	participantRepo repository.ParticipantRepository,
	state *livestate.Store,
) SessionService {
	return &sessionService{
		sessionRepo:     sessionRepo,
		quizRepo:        quizRepo,
		participantRepo: participantRepo,
		state:           state,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, req dto.SessionCreateDTO) (*dto.SessionResponseDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(req.QuizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("error fetching quiz %d: %w", req.QuizID, err)
	}
	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("quiz %d has no questions, cannot host a session", req.QuizID)
	}

	code, err := s.uniqueSessionCode()
	if err != nil {
		return nil, err
	}

	session := model.QuizSession{
		QuizID:               req.QuizID,
		HostID:               req.HostID,
		Code:                 code,
		Status:               model.SessionStatusWaiting,
		CurrentQuestionIndex: -1,
		AllowLateJoin:        req.AllowLateJoin,
	}
	if err := s.sessionRepo.Create(&session); err != nil {
		log.Error().Err(err).Uint("quizID", req.QuizID).Msg("CreateSession: failed to create session")
		return nil, fmt.Errorf("database error creating session: %w", err)
	}

	s.refreshSnapshot(ctx, &session, nil, len(quiz.Questions))

	var resp dto.SessionResponseDTO
	copier.Copy(&resp, &session)
	return &resp, nil
}

func (s *sessionService) Join(ctx context.Context, code string, req dto.JoinSessionDTO) (*dto.ParticipantResponseDTO, error) {
	session, err := s.findSessionWithQuiz(code)
	if err != nil {
		return nil, err
	}
	if !session.CanJoin() {
		return nil, ErrSessionNotJoinable
	}

	taken, err := s.participantRepo.NicknameExists(session.ID, req.Nickname)
	if err != nil {
		return nil, fmt.Errorf("error checking nickname: %w", err)
	}
	if taken {
		return nil, ErrNicknameTaken
	}

	participant := model.Participant{
		SessionID: session.ID,
		Nickname:  req.Nickname,
		UserID:    req.UserID,
		Status:    model.ParticipantStatusJoined,
		JoinedAt:  time.Now(),
	}
	if err := s.participantRepo.Create(&participant); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNicknameTaken
		}
		return nil, fmt.Errorf("database error joining session: %w", err)
	}

	participants, perr := s.participantRepo.FindBySessionID(session.ID)
	if perr == nil {
		s.refreshSnapshot(ctx, session, participants, len(session.Quiz.Questions))
	}

	var resp dto.ParticipantResponseDTO
	copier.Copy(&resp, &participant)
	return &resp, nil
}

func (s *sessionService) Start(ctx context.Context, code string) (*dto.SessionResponseDTO, error) {
	return s.transition(ctx, code, model.SessionStatusActive, func(session *model.QuizSession) {
		now := time.Now()
		session.StartedAt = &now
		session.CurrentQuestionIndex = 0
	})
}

func (s *sessionService) Pause(ctx context.Context, code string) (*dto.SessionResponseDTO, error) {
	return s.transition(ctx, code, model.SessionStatusPaused, nil)
}

func (s *sessionService) Resume(ctx context.Context, code string) (*dto.SessionResponseDTO, error) {
	return s.transition(ctx, code, model.SessionStatusActive, nil)
}

// NextQuestion advances the session; past the last question it completes the
// session instead.
func (s *sessionService) NextQuestion(ctx context.Context, code string) (*dto.SessionResponseDTO, error) {
	session, err := s.findSessionWithQuiz(code)
	if err != nil {
		return nil, err
	}
	if session.Status != model.SessionStatusActive {
		return nil, ErrInvalidTransition
	}

	next := session.CurrentQuestionIndex + 1
	if next >= len(session.Quiz.Questions) {
		return s.Complete(ctx, code)
	}

	session.CurrentQuestionIndex = next
	if err := s.sessionRepo.Update(session); err != nil {
		return nil, fmt.Errorf("database error advancing session %s: %w", code, err)
	}
	s.refreshFromDB(ctx, session)

	var resp dto.SessionResponseDTO
	copier.Copy(&resp, session)
	return &resp, nil
}

// Complete moves the session to its terminal state and finalizes every
// participant.
func (s *sessionService) Complete(ctx context.Context, code string) (*dto.SessionResponseDTO, error) {
	resp, err := s.transition(ctx, code, model.SessionStatusCompleted, func(session *model.QuizSession) {
		now := time.Now()
		session.EndedAt = &now
	})
	if err != nil {
		return nil, err
	}
	if err := s.participantRepo.FinishAllInSession(resp.ID); err != nil {
		log.Error().Err(err).Str("code", code).Msg("Complete: failed to finalize participants")
	}
	return resp, nil
}

func (s *sessionService) GetState(ctx context.Context, code string) (*dto.SessionStateDTO, error) {
	session, err := s.findSessionWithQuiz(code)
	if err != nil {
		return nil, err
	}

	snap, err := s.state.Get(ctx, code)
	if err != nil {
		log.Warn().Err(err).Str("code", code).Msg("GetState: snapshot read failed, rebuilding from database")
	}
	if snap == nil {
		participants, perr := s.participantRepo.FindBySessionID(session.ID)
		if perr != nil {
			return nil, fmt.Errorf("error fetching participants for session %s: %w", code, perr)
		}
		snap = s.refreshSnapshot(ctx, session, participants, len(session.Quiz.Questions))
	}

	state := &dto.SessionStateDTO{
		Code:                 session.Code,
		Status:               session.Status,
		CurrentQuestionIndex: session.CurrentQuestionIndex,
		QuestionCount:        len(session.Quiz.Questions),
		Leaderboard:          make([]dto.LeaderboardEntryDTO, 0, len(snap.Leaderboard)),
		UpdatedAt:            snap.UpdatedAt,
	}
	for _, entry := range snap.Leaderboard {
		state.Leaderboard = append(state.Leaderboard, dto.LeaderboardEntryDTO{
			ParticipantID: entry.ParticipantID,
			Nickname:      entry.Nickname,
			Score:         entry.Score,
		})
	}

	// The question in play is shown without its correct answers.
	idx := session.CurrentQuestionIndex
	if session.Status == model.SessionStatusActive && idx >= 0 && idx < len(session.Quiz.Questions) {
		var q dto.PlayQuestionDTO
		copier.Copy(&q, &session.Quiz.Questions[idx])
		state.CurrentQuestion = &q
	}
	return state, nil
}

func (s *sessionService) findSessionWithQuiz(code string) (*model.QuizSession, error) {
	session, err := s.sessionRepo.FindByCodeWithQuiz(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("error fetching session %s: %w", code, err)
	}
	return session, nil
}

func (s *sessionService) transition(ctx context.Context, code, next string, mutate func(*model.QuizSession)) (*dto.SessionResponseDTO, error) {
	session, err := s.findSessionWithQuiz(code)
	if err != nil {
		return nil, err
	}
	if !session.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	session.Status = next
	if mutate != nil {
		mutate(session)
	}
	if err := s.sessionRepo.Update(session); err != nil {
		return nil, fmt.Errorf("database error updating session %s: %w", code, err)
	}
	log.Info().Str("code", code).Str("status", next).Msg("Session status changed")
	s.refreshFromDB(ctx, session)

	var resp dto.SessionResponseDTO
	copier.Copy(&resp, session)
	return &resp, nil
}

func (s *sessionService) refreshFromDB(ctx context.Context, session *model.QuizSession) {
	participants, err := s.participantRepo.FindBySessionID(session.ID)
	if err != nil {
		log.Warn().Err(err).Str("code", session.Code).Msg("Snapshot refresh: could not load participants")
		return
	}
	s.refreshSnapshot(ctx, session, participants, len(session.Quiz.Questions))
}

func (s *sessionService) refreshSnapshot(ctx context.Context, session *model.QuizSession, participants []model.Participant, questionCount int) *livestate.Snapshot {
	snap := buildSnapshot(session, participants, questionCount)
	if err := s.state.Save(ctx, snap); err != nil {
		log.Warn().Err(err).Str("code", session.Code).Msg("Failed to store session snapshot")
	}
	return snap
}

// buildSnapshot assumes participants are already ordered by score descending,
// the way ParticipantRepository returns them.
func buildSnapshot(session *model.QuizSession, participants []model.Participant, questionCount int) *livestate.Snapshot {
	snap := &livestate.Snapshot{
		SessionCode:          session.Code,
		Status:               session.Status,
		CurrentQuestionIndex: session.CurrentQuestionIndex,
		QuestionCount:        questionCount,
		Leaderboard:          make([]livestate.LeaderboardEntry, 0, len(participants)),
		UpdatedAt:            time.Now(),
	}
	for _, p := range participants {
		snap.Leaderboard = append(snap.Leaderboard, livestate.LeaderboardEntry{
			ParticipantID: p.ID,
			Nickname:      p.Nickname,
			Score:         p.Score,
		})
	}
	return snap
}

// uniqueSessionCode draws short hex codes until one is free. Collisions are
// rare at this length; the retry cap guards against an exhausted keyspace.
func (s *sessionService) uniqueSessionCode() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code, err := generateSessionCode()
		if err != nil {
			return "", err
		}
		exists, err := s.sessionRepo.CodeExists(code)
		if err != nil {
			return "", fmt.Errorf("error checking session code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique session code")
}

func generateSessionCode() (string, error) {
	bytes := make([]byte, sessionCodeLength/2+1)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("error generating session code: %w", err)
	}
	return hex.EncodeToString(bytes)[:sessionCodeLength], nil
}
