package service

import (
	"context"

	"github.com/LEEEUNCHEOL96/sbb-board/internal/answer/domain"
	answerrepo "github.com/LEEEUNCHEOL96/sbb-board/internal/answer/repository"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/clock"
	commonerrors "github.com/LEEEUNCHEOL96/sbb-board/internal/common/errors"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/logger"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/observability/metrics"
	questiondomain "github.com/LEEEUNCHEOL96/sbb-board/internal/question/domain"
	userdomain "github.com/LEEEUNCHEOL96/sbb-board/internal/user/domain"
)

type AnswerService struct {
	repo  answerrepo.Repository
	clock clock.Clock
	log   *logger.Logger
}

func NewAnswerService(repo answerrepo.Repository, clk clock.Clock, log *logger.Logger) *AnswerService {
	return &AnswerService{
		repo:  repo,
		clock: clk,
		log:   log,
	}
}

// Create persists a new answer attached to the given question.
func (s *AnswerService) Create(ctx context.Context, question questiondomain.Question, content string, author userdomain.User) (domain.Answer, error) {
	summary := author.Summary()
	answer := domain.Answer{
		Content:    content,
		CreateDate: s.clock.Now(),
		QuestionID: question.ID,
		Author:     &summary,
	}

	created, err := s.repo.Create(ctx, answer)
	if err != nil {
		s.log.Errorf("create answer failed question_id=%d: %v", question.ID, err)
		return domain.Answer{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	metrics.AnswersCreatedTotal.Inc()

	s.log.WithFields(ctx, logger.Fields{
		"answer_id":   created.ID,
		"question_id": question.ID,
		"author":      author.Username,
		"action":      "answer_created",
	}).Info("answer created")

	return created, nil
}

func (s *AnswerService) ListForQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	answers, err := s.repo.ListByQuestion(ctx, questionID)
	if err != nil {
		s.log.Errorf("list answers failed question_id=%d: %v", questionID, err)
		return nil, commonerrors.ErrDatabaseError.WithCause(err)
	}
	return answers, nil
}
