package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"concert-venue/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRow scans a fixed set of values or returns err
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = r.values[i].(int64)
		case *int:
			*p = r.values[i].(int)
		case *string:
			*p = r.values[i].(string)
		case *time.Time:
			*p = r.values[i].(time.Time)
		}
	}
	return nil
}

type fakeDB struct {
	row      pgx.Row
	tag      pgconn.CommandTag
	execErr  error
	lastSQL  string
	lastArgs []any
	execSQL  []string
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL, f.lastArgs = sql, args
	return f.row
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	f.execSQL = append(f.execSQL, sql)
	return f.tag, f.execErr
}

func (f *fakeDB) Begin(context.Context) (pgx.Tx, error) { return nil, errors.New("not implemented") }
func (f *fakeDB) Ping(context.Context) error            { return nil }
func (f *fakeDB) Close()                                {}

func TestUserCreateSetsID(t *testing.T) {
	db := &fakeDB{row: fakeRow{values: []any{int64(42)}}}
	repo := NewUserRepository(db, zap.NewNop())

	user := &entity.User{Email: "a@venue.test", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))

	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "a@venue.test", db.lastArgs[0])
}

func TestUserCreateKeepsPresetID(t *testing.T) {
	db := &fakeDB{row: fakeRow{values: []any{int64(1)}}}
	repo := NewUserRepository(db, zap.NewNop())

	user := &entity.User{Base: entity.Base{ID: 1}, Email: "test@test.test", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))

	assert.Equal(t, int64(1), user.ID)
	require.Len(t, db.execSQL, 1)
	assert.Contains(t, db.execSQL[0], "setval")
}

func TestUserCreateWithoutIDSkipsSequenceSync(t *testing.T) {
	db := &fakeDB{row: fakeRow{values: []any{int64(7)}}}
	repo := NewUserRepository(db, zap.NewNop())

	require.NoError(t, repo.Create(context.Background(), &entity.User{Email: "a@venue.test"}))
	assert.Empty(t, db.execSQL)
}

func TestUserCreateDuplicate(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: &pgconn.PgError{Code: pgUniqueViolation}}}
	repo := NewUserRepository(db, zap.NewNop())

	err := repo.Create(context.Background(), &entity.User{Email: "a@venue.test"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserFindMissingReturnsNil(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}
	repo := NewUserRepository(db, zap.NewNop())

	user, err := repo.FindByEmail(context.Background(), "nobody@venue.test")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserFindByID(t *testing.T) {
	now := time.Now()
	db := &fakeDB{row: fakeRow{values: []any{int64(1), "test@test.test", "hash", now, now}}}
	repo := NewUserRepository(db, zap.NewNop())

	user, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "test@test.test", user.Email)
	assert.Equal(t, "hash", user.PasswordHash)
}

func TestReservationFindByIDError(t *testing.T) {
	boom := errors.New("connection reset")
	db := &fakeDB{row: fakeRow{err: boom}}
	repo := NewReservationRepository(db, zap.NewNop())

	_, err := repo.FindByID(context.Background(), 7)
	assert.ErrorIs(t, err, boom)
}

func TestSessionRevokeNothingToRevoke(t *testing.T) {
	db := &fakeDB{tag: pgconn.NewCommandTag("UPDATE 0")}
	repo := NewSessionRepository(db, zap.NewNop())

	err := repo.Revoke(context.Background(), "8d7f3c1e-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)

	db.tag = pgconn.NewCommandTag("UPDATE 1")
	assert.NoError(t, repo.Revoke(context.Background(), "8d7f3c1e-0000-4000-8000-000000000000"))
}
