package messenger

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

// EnsureUser is an idempotent get-or-create; unknown users get a
// placeholder name. The no-op DO UPDATE makes RETURNING yield the row on
// both paths.
func (r *repo) EnsureUser(ctx context.Context, userID string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (user_id, name)
		VALUES ($1, 'Unknown')
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING user_id, name, created_at
	`, userID)

	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.CreatedAt); err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repo) Append(ctx context.Context, userID, text string, direction Direction, status Status) (*MessageEntry, error) {
	m := &MessageEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Text:      text,
		Direction: direction,
		Status:    status,
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO message_log (message_id, user_id, message_text, direction, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`,
		m.ID,
		m.UserID,
		m.Text,
		string(m.Direction),
		string(m.Status),
	)

	if err := row.Scan(&m.CreatedAt); err != nil {
		return nil, err
	}

	return m, nil
}

func (r *repo) RecentByUser(ctx context.Context, userID string, limit int) ([]MessageEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT message_id, user_id, message_text, direction, status, created_at
		FROM message_log
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MessageEntry
	for rows.Next() {
		var m MessageEntry
		var direction, status string
		if err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.Text,
			&direction,
			&status,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		m.Direction = Direction(direction)
		m.Status = Status(status)
		out = append(out, m)
	}

	return out, rows.Err()
}
