package messenger

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepo_EnsureUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("U1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "created_at"}).
			AddRow("U1", "Unknown", created))

	u, err := NewRepo(db).EnsureUser(context.Background(), "U1")
	require.NoError(t, err)
	assert.Equal(t, "U1", u.ID)
	assert.Equal(t, "Unknown", u.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO message_log")).
		WithArgs(sqlmock.AnyArg(), "U1", "hi", "incoming", "sent").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	m, err := NewRepo(db).Append(context.Background(), "U1", "hi", DirectionIncoming, StatusSent)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, m.ID)
	assert.Equal(t, "U1", m.UserID)
	assert.Equal(t, DirectionIncoming, m.Direction)
	assert.Equal(t, StatusSent, m.Status)
	assert.WithinDuration(t, created, m.CreatedAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_RecentByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"message_id", "user_id", "message_text", "direction", "status", "created_at"}).
		AddRow(uuid.New().String(), "U1", "newest", "outgoing", "sent", now).
		AddRow(uuid.New().String(), "U1", "older", "incoming", "sent", now.Add(-time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta("FROM message_log")).
		WithArgs("U1", 5).
		WillReturnRows(rows)

	out, err := NewRepo(db).RecentByUser(context.Background(), "U1", 5)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "newest", out[0].Text)
	assert.Equal(t, DirectionOutgoing, out[0].Direction)
	assert.Equal(t, "older", out[1].Text)
	assert.Equal(t, DirectionIncoming, out[1].Direction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_RecentByUser_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM message_log")).
		WithArgs("U1", 5).
		WillReturnRows(sqlmock.NewRows([]string{"message_id", "user_id", "message_text", "direction", "status", "created_at"}))

	out, err := NewRepo(db).RecentByUser(context.Background(), "U1", 5)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}
