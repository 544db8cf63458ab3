package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/clock"
	commonerrors "github.com/LEEEUNCHEOL96/sbb-board/internal/common/errors"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/logger"
	"github.com/LEEEUNCHEOL96/sbb-board/internal/question/domain"
	userdomain "github.com/LEEEUNCHEOL96/sbb-board/internal/user/domain"
)

func setupQuestionService(t *testing.T, pageSize int) (*QuestionService, *mockQuestionRepo, *clock.MockClock) {
	t.Helper()
	mockRepo := newMockQuestionRepo()
	mockClock := clock.NewMockClock(time.Date(2024, 9, 3, 12, 0, 0, 0, time.UTC))
	log, _ := logger.New("", "test", "info")
	svc := NewQuestionService(mockRepo, mockClock, pageSize, log)
	return svc, mockRepo, mockClock
}

func testUser(username string) userdomain.User {
	return userdomain.User{
		ID:       userdomain.ID("id-" + username),
		Username: username,
	}
}

func TestQuestionService_Create_StampsCreateDateAndAuthor(t *testing.T) {
	svc, mockRepo, mockClock := setupQuestionService(t, 10)

	var stored domain.Question
	mockRepo.createFunc = func(ctx context.Context, q domain.Question) (domain.Question, error) {
		stored = q
		q.ID = 42
		return q, nil
	}

	created, err := svc.Create(context.Background(), "Sbb가 무엇인가요?", "sbb에 대해 알고 싶습니다.", testUser("user1"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.ID != 42 {
		t.Errorf("expected ID 42, got %d", created.ID)
	}
	if stored.Subject != "Sbb가 무엇인가요?" {
		t.Errorf("unexpected subject %q", stored.Subject)
	}
	if !stored.CreateDate.Equal(mockClock.Now()) {
		t.Errorf("expected create date %v, got %v", mockClock.Now(), stored.CreateDate)
	}
	if stored.Author == nil || stored.Author.Username != "user1" {
		t.Errorf("expected author user1, got %+v", stored.Author)
	}
}

func TestQuestionService_GetQuestion_NotFound(t *testing.T) {
	svc, _, _ := setupQuestionService(t, 10)

	_, err := svc.GetQuestion(context.Background(), 99)
	if err == nil {
		t.Fatal("expected error")
	}
	de, ok := commonerrors.AsDomainError(err)
	if !ok || de.Code() != "QUESTION_NOT_FOUND" {
		t.Errorf("expected QUESTION_NOT_FOUND, got %v", err)
	}
}

func TestQuestionService_GetQuestion_RepoError(t *testing.T) {
	svc, mockRepo, _ := setupQuestionService(t, 10)
	mockRepo.findByIDFunc = func(ctx context.Context, id int64) (domain.Question, error) {
		return domain.Question{}, errors.New("connection refused")
	}

	_, err := svc.GetQuestion(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	de, ok := commonerrors.AsDomainError(err)
	if !ok || de.Code() != "DATABASE_ERROR" {
		t.Errorf("expected DATABASE_ERROR, got %v", err)
	}
}

func TestQuestionService_GetList_PagesNewestFirst(t *testing.T) {
	svc, mockRepo, _ := setupQuestionService(t, 10)

	mockRepo.countFunc = func(ctx context.Context, keyword string) (int64, error) {
		return 25, nil
	}

	var gotLimit, gotOffset int
	mockRepo.listFunc = func(ctx context.Context, keyword string, limit, offset int) ([]domain.Question, error) {
		gotLimit, gotOffset = limit, offset
		return []domain.Question{{ID: 15}, {ID: 14}}, nil
	}

	page, err := svc.GetList(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotLimit != 10 || gotOffset != 10 {
		t.Errorf("expected limit=10 offset=10, got limit=%d offset=%d", gotLimit, gotOffset)
	}
	if page.TotalElements != 25 {
		t.Errorf("expected 25 total elements, got %d", page.TotalElements)
	}
	if page.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", page.TotalPages)
	}
	if !page.HasNext() || !page.HasPrevious() {
		t.Errorf("expected middle page to have next and previous")
	}
}

func TestQuestionService_GetList_OutOfRangePageIsEmpty(t *testing.T) {
	svc, mockRepo, _ := setupQuestionService(t, 10)

	mockRepo.countFunc = func(ctx context.Context, keyword string) (int64, error) {
		return 5, nil
	}
	mockRepo.listFunc = func(ctx context.Context, keyword string, limit, offset int) ([]domain.Question, error) {
		t.Fatal("list must not be queried for an out-of-range page")
		return nil, nil
	}

	page, err := svc.GetList(context.Background(), 7, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(page.Content) != 0 {
		t.Errorf("expected empty page, got %d questions", len(page.Content))
	}
	if page.HasNext() {
		t.Error("out-of-range page must not have next")
	}
}

func TestQuestionService_GetList_NegativePageClampedToZero(t *testing.T) {
	svc, mockRepo, _ := setupQuestionService(t, 10)

	mockRepo.countFunc = func(ctx context.Context, keyword string) (int64, error) {
		return 3, nil
	}

	var gotOffset int
	mockRepo.listFunc = func(ctx context.Context, keyword string, limit, offset int) ([]domain.Question, error) {
		gotOffset = offset
		return []domain.Question{{ID: 3}, {ID: 2}, {ID: 1}}, nil
	}

	page, err := svc.GetList(context.Background(), -2, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotOffset != 0 {
		t.Errorf("expected offset 0, got %d", gotOffset)
	}
	if page.Number != 0 {
		t.Errorf("expected page number 0, got %d", page.Number)
	}
}

func TestQuestionService_GetList_KeywordPassedThrough(t *testing.T) {
	svc, mockRepo, _ := setupQuestionService(t, 10)

	var countKeyword, listKeyword string
	mockRepo.countFunc = func(ctx context.Context, keyword string) (int64, error) {
		countKeyword = keyword
		return 1, nil
	}
	mockRepo.listFunc = func(ctx context.Context, keyword string, limit, offset int) ([]domain.Question, error) {
		listKeyword = keyword
		return []domain.Question{{ID: 1}}, nil
	}

	if _, err := svc.GetList(context.Background(), 0, "  sbb "); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if countKeyword != "sbb" || listKeyword != "sbb" {
		t.Errorf("expected trimmed keyword %q, got count=%q list=%q", "sbb", countKeyword, listKeyword)
	}
}

func TestQuestionService_Modify_RewritesFields(t *testing.T) {
	svc, mockRepo, _ := setupQuestionService(t, 10)

	var gotID int64
	var gotSubject, gotContent string
	mockRepo.updateFunc = func(ctx context.Context, id int64, subject, content string) error {
		gotID, gotSubject, gotContent = id, subject, content
		return nil
	}

	err := svc.Modify(context.Background(), domain.Question{ID: 7, Subject: "old"}, "new subject", "new content")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotID != 7 || gotSubject != "new subject" || gotContent != "new content" {
		t.Errorf("unexpected update: id=%d subject=%q content=%q", gotID, gotSubject, gotContent)
	}
}

func TestQuestionService_Delete_NotFound(t *testing.T) {
	svc, mockRepo, _ := setupQuestionService(t, 10)

	mockRepo.deleteFunc = func(ctx context.Context, id int64) error {
		return errors.New("boom")
	}

	err := svc.Delete(context.Background(), domain.Question{ID: 7})
	if err == nil {
		t.Fatal("expected error")
	}
	de, ok := commonerrors.AsDomainError(err)
	if !ok || de.Code() != "DATABASE_ERROR" {
		t.Errorf("expected DATABASE_ERROR, got %v", err)
	}
}

func TestQuestionService_Vote_Idempotent(t *testing.T) {
	svc, mockRepo, _ := setupQuestionService(t, 10)

	voters := make(map[userdomain.ID]struct{})
	mockRepo.addVoterFunc = func(ctx context.Context, questionID int64, userID userdomain.ID) error {
		voters[userID] = struct{}{}
		return nil
	}
	mockRepo.countVotersFunc = func(ctx context.Context, questionID int64) (int, error) {
		return len(voters), nil
	}

	question := domain.Question{ID: 1}
	voter := testUser("user1")

	first, err := svc.Vote(context.Background(), question, voter)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := svc.Vote(context.Background(), question, voter)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first != 1 || second != 1 {
		t.Errorf("expected voter count 1 after repeat vote, got first=%d second=%d", first, second)
	}
}

func TestQuestionService_Vote_DistinctVotersAccumulate(t *testing.T) {
	svc, mockRepo, _ := setupQuestionService(t, 10)

	voters := make(map[userdomain.ID]struct{})
	mockRepo.addVoterFunc = func(ctx context.Context, questionID int64, userID userdomain.ID) error {
		voters[userID] = struct{}{}
		return nil
	}
	mockRepo.countVotersFunc = func(ctx context.Context, questionID int64) (int, error) {
		return len(voters), nil
	}

	question := domain.Question{ID: 1}

	if _, err := svc.Vote(context.Background(), question, testUser("user1")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	count, err := svc.Vote(context.Background(), question, testUser("user2"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 2 {
		t.Errorf("expected voter count 2, got %d", count)
	}
}
