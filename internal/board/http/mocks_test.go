package http

import (
	"context"
	"errors"
	"net/http"

	answerdomain "github.com/LEEEUNCHEOL96/sbb-board/internal/answer/domain"
	questiondomain "github.com/LEEEUNCHEOL96/sbb-board/internal/question/domain"
	questionrepo "github.com/LEEEUNCHEOL96/sbb-board/internal/question/repository"
	userdomain "github.com/LEEEUNCHEOL96/sbb-board/internal/user/domain"
	userrepo "github.com/LEEEUNCHEOL96/sbb-board/internal/user/repository"
)

type mockQuestionRepo struct {
	createFunc      func(ctx context.Context, question questiondomain.Question) (questiondomain.Question, error)
	findByIDFunc    func(ctx context.Context, id int64) (questiondomain.Question, error)
	listFunc        func(ctx context.Context, keyword string, limit, offset int) ([]questiondomain.Question, error)
	countFunc       func(ctx context.Context, keyword string) (int64, error)
	updateFunc      func(ctx context.Context, id int64, subject, content string) error
	deleteFunc      func(ctx context.Context, id int64) error
	addVoterFunc    func(ctx context.Context, questionID int64, userID userdomain.ID) error
	countVotersFunc func(ctx context.Context, questionID int64) (int, error)
}

func (m *mockQuestionRepo) Create(ctx context.Context, question questiondomain.Question) (questiondomain.Question, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, question)
	}
	question.ID = 1
	return question, nil
}

func (m *mockQuestionRepo) FindByID(ctx context.Context, id int64) (questiondomain.Question, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return questiondomain.Question{}, questionrepo.ErrQuestionNotFound
}

func (m *mockQuestionRepo) List(ctx context.Context, keyword string, limit, offset int) ([]questiondomain.Question, error) {
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

type mockAnswerRepo struct {
	createFunc         func(ctx context.Context, answer answerdomain.Answer) (answerdomain.Answer, error)
	listByQuestionFunc func(ctx context.Context, questionID int64) ([]answerdomain.Answer, error)
}

func (m *mockAnswerRepo) Create(ctx context.Context, answer answerdomain.Answer) (answerdomain.Answer, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, answer)
	}
	answer.ID = 1
	return answer, nil
}

func (m *mockAnswerRepo) ListByQuestion(ctx context.Context, questionID int64) ([]answerdomain.Answer, error) {
	if m.listByQuestionFunc != nil {
		return m.listByQuestionFunc(ctx, questionID)
	}
	return nil, nil
}

type mockUserRepo struct {
	createFunc         func(ctx context.Context, user userdomain.User) error
	findByUsernameFunc func(ctx context.Context, username string) (userdomain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user userdomain.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (userdomain.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return userdomain.User{}, userrepo.ErrUserNotFound
}

func (m *mockUserRepo) FindByID(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
	return userdomain.User{}, userrepo.ErrUserNotFound
}

type mockHasher struct{}

func (m *mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *mockHasher) Compare(hash string, password string) error {
	if hash == "hashed:"+password {
		return nil
	}
	return errors.New("mismatch")
}

type mockIDGenerator struct{}

func (m *mockIDGenerator) NewID() (string, error) {
	return "user-id-1", nil
}

// renderCall records one Render invocation so tests can assert on the view
// name and attributes without parsing JSON.
type renderCall struct {
	status int
	view   string
	data   ViewData
}

type recordingRenderer struct {
	calls []renderCall
}

func (r *recordingRenderer) Render(w http.ResponseWriter, status int, view string, data ViewData) {
	r.calls = append(r.calls, renderCall{status: status, view: view, data: data})
	w.WriteHeader(status)
}

func (r *recordingRenderer) last() renderCall {
	return r.calls[len(r.calls)-1]
}
