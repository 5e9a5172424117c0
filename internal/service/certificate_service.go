package service

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/saqh5037/quizApp-sub002/internal/model"
	"github.com/saqh5037/quizApp-sub002/internal/repository"
	"gorm.io/gorm"
)

// CertificateService renders a PDF completion certificate for a participant
// of a completed session.
type CertificateService interface {
	Generate(code string, participantID uint) ([]byte, string, error)
}

type certificateService struct {
	sessionRepo     repository.SessionRepository
	participantRepo repository.ParticipantRepository
}

func NewCertificateService(sessionRepo repository.SessionRepository, participantRepo repository.ParticipantRepository) CertificateService {
	return &certificateService{sessionRepo: sessionRepo, participantRepo: participantRepo}
}

func (s *certificateService) Generate(code string, participantID uint) ([]byte, string, error) {
	session, err := s.sessionRepo.FindByCodeWithQuiz(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrSessionNotFound
		}
		return nil, "", fmt.Errorf("error fetching session %s: %w", code, err)
	}
	if session.Status != model.SessionStatusCompleted {
		return nil, "", ErrSessionNotCompleted
	}

	participant, err := s.participantRepo.FindByID(participantID)
	if err != nil || participant.SessionID != session.ID {
		return nil, "", ErrParticipantNotFound
	}

	maxScore := 0
	for _, q := range session.Quiz.Questions {
		maxScore += q.Points
	}

	issuedAt := time.Now()
	if session.EndedAt != nil {
		issuedAt = *session.EndedAt
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Certificate of Completion", false)
	pdf.AddPage()

	pdf.SetDrawColor(60, 60, 120)
	pdf.SetLineWidth(1.2)
	pdf.Rect(10, 10, 277, 190, "D")

	pdf.SetFont("Helvetica", "B", 32)
	pdf.SetY(45)
	pdf.CellFormat(0, 16, "Certificate of Completion", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.Ln(10)
	pdf.CellFormat(0, 8, "This certifies that", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.Ln(4)
	pdf.CellFormat(0, 12, participant.Nickname, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.Ln(4)
	pdf.CellFormat(0, 8, fmt.Sprintf("completed the quiz \"%s\"", session.Quiz.Title), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("with a score of %d out of %d points", participant.Score, maxScore), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "I", 11)
	pdf.Ln(12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Issued on %s - session %s", issuedAt.Format("January 2, 2006"), session.Code), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render certificate PDF: %w", err)
	}

	filename := fmt.Sprintf("certificate-%s-%d.pdf", session.Code, participant.ID)
	return buf.Bytes(), filename, nil
}
