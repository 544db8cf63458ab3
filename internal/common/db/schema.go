package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4/pgxpool"
)

// EnsureSchema creates the board tables when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, query := range strings.Split(schema, "---") {
		if _, err := pool.Exec(ctx, query); err != nil {
			return fmt.Errorf("schema error: %w", err)
		}
	}
	return nil
}

const schema = `

CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    email         TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

---

CREATE TABLE IF NOT EXISTS question (
    id          BIGSERIAL PRIMARY KEY,
    subject     TEXT NOT NULL,
    content     TEXT NOT NULL,
    create_date TIMESTAMPTZ NOT NULL,
    author_id   TEXT REFERENCES users(id)
);

---

CREATE TABLE IF NOT EXISTS answer (
    id          BIGSERIAL PRIMARY KEY,
    content     TEXT NOT NULL,
    create_date TIMESTAMPTZ NOT NULL,
    question_id BIGINT NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    author_id   TEXT REFERENCES users(id)
);

---

CREATE INDEX IF NOT EXISTS answer_question_id_idx ON answer(question_id);

---

CREATE TABLE IF NOT EXISTS question_voter (
    question_id BIGINT NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    user_id     TEXT NOT NULL REFERENCES users(id),

    PRIMARY KEY(question_id, user_id)
);

`
