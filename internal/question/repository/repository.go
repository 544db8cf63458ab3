package repository

import (
	"context"
	"errors"
	"fmt"

	pgx "github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/LEEEUNCHEOL96/sbb-board/internal/question/domain"
	userdomain "github.com/LEEEUNCHEOL96/sbb-board/internal/user/domain"
)

type Repository interface {
	Create(ctx context.Context, question domain.Question) (domain.Question, error)
	FindByID(ctx context.Context, id int64) (domain.Question, error)
	List(ctx context.Context, keyword string, limit, offset int) ([]domain.Question, error)
	Count(ctx context.Context, keyword string) (int64, error)
	Update(ctx context.Context, id int64, subject, content string) error
	Delete(ctx context.Context, id int64) error
	AddVoter(ctx context.Context, questionID int64, userID userdomain.ID) error
	CountVoters(ctx context.Context, questionID int64) (int, error)
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Create(ctx context.Context, q domain.Question) (domain.Question, error) {
	var authorID *string
	if q.Author != nil {
		id := string(q.Author.ID)
		authorID = &id
	}

	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO question (subject, content, create_date, author_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		q.Subject,
		q.Content,
		q.CreateDate,
		authorID,
	)
	if err := row.Scan(&q.ID); err != nil {
		return domain.Question{}, fmt.Errorf("failed to create question: %w", err)
	}
	return q, nil
}

func (r *PgRepository) FindByID(ctx context.Context, id int64) (domain.Question, error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT q.id, q.subject, q.content, q.create_date, u.id, u.username,
		        (SELECT COUNT(*) FROM question_voter v WHERE v.question_id = q.id)
		 FROM question q
		 LEFT JOIN users u ON u.id = q.author_id
		 WHERE q.id = $1`,
		id,
	)

	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Question{}, ErrQuestionNotFound
		}
		return domain.Question{}, fmt.Errorf("failed to find question by id: %w", err)
	}
	return q, nil
}

// List returns one page of questions ordered newest-first. A non-empty keyword
// restricts the result to questions matching it (case-insensitive substring)
// in subject, content, author username, answer content or answer author
// username; questions matching through several answers appear once.
func (r *PgRepository) List(ctx context.Context, keyword string, limit, offset int) ([]domain.Question, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT DISTINCT q.id, q.subject, q.content, q.create_date, u.id, u.username,
		        (SELECT COUNT(*) FROM question_voter v WHERE v.question_id = q.id)
		 FROM question q
		 LEFT JOIN users u ON u.id = q.author_id
		 LEFT JOIN answer a ON a.question_id = q.id
		 LEFT JOIN users au ON au.id = a.author_id
		 WHERE `+keywordFilter+`
		 ORDER BY q.create_date DESC, q.id DESC
		 LIMIT $2 OFFSET $3`,
		likePattern(keyword),
		limit,
		offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	questions := make([]domain.Question, 0, limit)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows iteration error: %w", rows.Err())
	}

	return questions, nil
}

func (r *PgRepository) Count(ctx context.Context, keyword string) (int64, error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT COUNT(DISTINCT q.id)
		 FROM question q
		 LEFT JOIN users u ON u.id = q.author_id
		 LEFT JOIN answer a ON a.question_id = q.id
		 LEFT JOIN users au ON au.id = a.author_id
		 WHERE `+keywordFilter,
		likePattern(keyword),
	)

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

func (r *PgRepository) Update(ctx context.Context, id int64, subject, content string) error {
	tag, err := r.pool.Exec(
		ctx,
		`UPDATE question SET subject = $1, content = $2 WHERE id = $3`,
		subject,
		content,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// Delete removes the question; its answers and voter rows go with it through
// the foreign key cascade.
func (r *PgRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM question WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// AddVoter records a vote. Repeat votes hit the primary key and are dropped,
// which keeps the operation idempotent.
func (r *PgRepository) AddVoter(ctx context.Context, questionID int64, userID userdomain.ID) error {
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO question_voter (question_id, user_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		questionID,
		string(userID),
	)
	if err != nil {
		return fmt.Errorf("failed to add voter: %w", err)
	}
	return nil
}

func (r *PgRepository) CountVoters(ctx context.Context, questionID int64) (int, error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM question_voter WHERE question_id = $1`,
		questionID,
	)

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count voters: %w", err)
	}
	return count, nil
}

func scanQuestion(row pgx.Row) (domain.Question, error) {
	var (
		q          domain.Question
		authorID   *string
		authorName *string
	)
	if err := row.Scan(&q.ID, &q.Subject, &q.Content, &q.CreateDate, &authorID, &authorName, &q.VoterCount); err != nil {
		return domain.Question{}, err
	}
	if authorID != nil && authorName != nil {
		q.Author = &userdomain.Summary{ID: userdomain.ID(*authorID), Username: *authorName}
	}
	return q, nil
}

// keywordFilter is the substring match shared by List and Count: a question
// qualifies through its subject, content, author, or any answer's content or
// author. An empty keyword yields the pattern %% and matches every row.
const keywordFilter = `(q.subject ILIKE $1
		    OR q.content ILIKE $1
		    OR u.username ILIKE $1
		    OR a.content ILIKE $1
		    OR au.username ILIKE $1)`

func likePattern(keyword string) string {
	return "%" + keyword + "%"
}

var ErrQuestionNotFound = pgx.ErrNoRows
