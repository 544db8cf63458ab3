package service

import (
	"context"

	"github.com/LEEEUNCHEOL96/sbb-board/internal/question/domain"
	questionrepo "github.com/LEEEUNCHEOL96/sbb-board/internal/question/repository"
	userdomain "github.com/LEEEUNCHEOL96/sbb-board/internal/user/domain"
)

type mockQuestionRepo struct {
	createFunc      func(ctx context.Context, question domain.Question) (domain.Question, error)
	findByIDFunc    func(ctx context.Context, id int64) (domain.Question, error)
	listFunc        func(ctx context.Context, keyword string, limit, offset int) ([]domain.Question, error)
	countFunc       func(ctx context.Context, keyword string) (int64, error)
	updateFunc      func(ctx context.Context, id int64, subject, content string) error
	deleteFunc      func(ctx context.Context, id int64) error
	addVoterFunc    func(ctx context.Context, questionID int64, userID userdomain.ID) error
	countVotersFunc func(ctx context.Context, questionID int64) (int, error)
}

func newMockQuestionRepo() *mockQuestionRepo {
	return &mockQuestionRepo{}
}

func (m *mockQuestionRepo) Create(ctx context.Context, question domain.Question) (domain.Question, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, question)
	}
	question.ID = 1
	return question, nil
}

func (m *mockQuestionRepo) FindByID(ctx context.Context, id int64) (domain.Question, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return domain.Question{}, questionrepo.ErrQuestionNotFound
}

func (m *mockQuestionRepo) List(ctx context.Context, keyword string, limit, offset int) ([]domain.Question, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, keyword, limit, offset)
	}
	return nil, nil
}

func (m *mockQuestionRepo) Count(ctx context.Context, keyword string) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, keyword)
	}
	return 0, nil
}

func (m *mockQuestionRepo) Update(ctx context.Context, id int64, subject, content string) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, subject, content)
	}
	return nil
}

func (m *mockQuestionRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockQuestionRepo) AddVoter(ctx context.Context, questionID int64, userID userdomain.ID) error {
	if m.addVoterFunc != nil {
		return m.addVoterFunc(ctx, questionID, userID)
	}
	return nil
}

func (m *mockQuestionRepo) CountVoters(ctx context.Context, questionID int64) (int, error) {
	if m.countVotersFunc != nil {
		return m.countVotersFunc(ctx, questionID)
	}
	return 0, nil
}
