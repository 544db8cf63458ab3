package service

import (
	"context"
	"errors"
	"strings"

	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/clock"
	commonerrors "github.com/LEEEUNCHEOL96/sbb-board/internal/common/errors"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/logger"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/observability/metrics"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/question/domain"
	questionrepo "github.com/LEEEUNCHEOL96/sbb-board/internal/question/repository"
	userdomain "github.com/LEEEUNCHEOL96/sbb-board/internal/user/domain"
)

type QuestionService struct {
	repo     questionrepo.Repository
	clock    clock.Clock
	pageSize int
	log      *logger.Logger
}

func NewQuestionService(
	repo questionrepo.Repository,
	clk clock.Clock,
	pageSize int,
	log *logger.Logger,
) *QuestionService {
	return &QuestionService{
		repo:     repo,
		clock:    clk,
		pageSize: pageSize,
		log:      log,
	}
}

// GetList returns one page of questions, newest first, optionally filtered by
// keyword. Pages outside the available range come back empty, never as an
// error.
func (s *QuestionService) GetList(ctx context.Context, page int, keyword string) (domain.Page, error) {
	if page < 0 {
		page = 0
	}
	keyword = strings.TrimSpace(keyword)

	total, err := s.repo.Count(ctx, keyword)
	if err != nil {
		s.log.Errorf("list questions failed: count: %v", err)
		return domain.Page{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	totalPages := int((total + int64(s.pageSize) - 1) / int64(s.pageSize))

	result := domain.Page{
		Content:       []domain.Question{},
		Number:        page,
		Size:          s.pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
	}

	if total == 0 || page >= totalPages {
		return result, nil
	}

	questions, err := s.repo.List(ctx, keyword, s.pageSize, page*s.pageSize)
	if err != nil {
		s.log.Errorf("list questions failed: %v", err)
		return domain.Page{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	result.Content = questions
	return result, nil
}

func (s *QuestionService) GetQuestion(ctx context.Context, id int64) (domain.Question, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, questionrepo.ErrQuestionNotFound) {
			return domain.Question{}, commonerrors.ErrQuestionNotFound
		}
		s.log.Errorf("get question failed id=%d: %v", id, err)
		return domain.Question{}, commonerrors.ErrDatabaseError.WithCause(err)
	}
	return question, nil
}

// Create persists a new question. Field constraints are the caller's business;
// the service only stamps the creation time.
func (s *QuestionService) Create(ctx context.Context, subject, content string, author userdomain.User) (domain.Question, error) {
	summary := author.Summary()
	question := domain.Question{
		Subject:    subject,
		Content:    content,
		CreateDate: s.clock.Now(),
		Author:     &summary,
	}

	created, err := s.repo.Create(ctx, question)
	if err != nil {
		s.log.Errorf("create question failed: %v", err)
		return domain.Question{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	metrics.QuestionsCreatedTotal.Inc()

	s.log.WithFields(ctx, logger.Fields{
		"question_id": created.ID,
		"author":      author.Username,
		"action":      "question_created",
	}).Info("question created")

	return created, nil
}

// Modify rewrites subject and content of an already-authorized question. The
// creation date stays untouched.
func (s *QuestionService) Modify(ctx context.Context, question domain.Question, subject, content string) error {
	if err := s.repo.Update(ctx, question.ID, subject, content); err != nil {
		if errors.Is(err, questionrepo.ErrQuestionNotFound) {
			return commonerrors.ErrQuestionNotFound
		}
		s.log.Errorf("modify question failed id=%d: %v", question.ID, err)
		return commonerrors.ErrDatabaseError.WithCause(err)
	}
	return nil
}

// Delete removes the question together with its answers and votes. Ownership
// is checked by the caller.
func (s *QuestionService) Delete(ctx context.Context, question domain.Question) error {
	if err := s.repo.Delete(ctx, question.ID); err != nil {
		if errors.Is(err, questionrepo.ErrQuestionNotFound) {
			return commonerrors.ErrQuestionNotFound
		}
		s.log.Errorf("delete question failed id=%d: %v", question.ID, err)
		return commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"question_id": question.ID,
		"action":      "question_deleted",
	}).Info("question deleted")

	return nil
}

// Vote adds voter to the question's voter set and returns the updated voter
// count. Voting twice is a no-op.
func (s *QuestionService) Vote(ctx context.Context, question domain.Question, voter userdomain.User) (int, error) {
	if err := s.repo.AddVoter(ctx, question.ID, voter.ID); err != nil {
		s.log.Errorf("vote failed question_id=%d: %v", question.ID, err)
		return 0, commonerrors.ErrDatabaseError.WithCause(err)
	}

	count, err := s.repo.CountVoters(ctx, question.ID)
	if err != nil {
		s.log.Errorf("vote count failed question_id=%d: %v", question.ID, err)
		return 0, commonerrors.ErrDatabaseError.WithCause(err)
	}

	metrics.VotesRegisteredTotal.Inc()

	s.log.WithFields(ctx, logger.Fields{
		"question_id": question.ID,
		"voter":       voter.Username,
		"action":      "question_voted",
	}).Info("question voted")

	return count, nil
}
