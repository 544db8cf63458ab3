package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/LEEEUNCHEOL96/sbb-board/internal/answer/domain"
	userdomain "github.com/LEEEUNCHEOL96/sbb-board/internal/user/domain"
)

type Repository interface {
	Create(ctx context.Context, answer domain.Answer) (domain.Answer, error)
	ListByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error)
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Create(ctx context.Context, a domain.Answer) (domain.Answer, error) {
	var authorID *string
	if a.Author != nil {
		id := string(a.Author.ID)
		authorID = &id
	}

	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO answer (content, create_date, question_id, author_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		a.Content,
		a.CreateDate,
		a.QuestionID,
		authorID,
	)
	if err := row.Scan(&a.ID); err != nil {
		return domain.Answer{}, fmt.Errorf("failed to create answer: %w", err)
	}
	return a, nil
}

func (r *PgRepository) ListByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT a.id, a.content, a.create_date, a.question_id, u.id, u.username
		 FROM answer a
		 LEFT JOIN users u ON u.id = a.author_id
		 WHERE a.question_id = $1
		 ORDER BY a.create_date ASC, a.id ASC`,
		questionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	defer rows.Close()

	answers := make([]domain.Answer, 0)
	for rows.Next() {
		var (
			a          domain.Answer
			authorID   *string
			authorName *string
		)
		if err := rows.Scan(&a.ID, &a.Content, &a.CreateDate, &a.QuestionID, &authorID, &authorName); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		if authorID != nil && authorName != nil {
			a.Author = &userdomain.Summary{ID: userdomain.ID(*authorID), Username: *authorName}
		}
		answers = append(answers, a)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows iteration error: %w", rows.Err())
	}

	return answers, nil
}
