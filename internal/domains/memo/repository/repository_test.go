package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"daily/infras/otel/mocks"
	"daily/infras/postgres"
	"daily/internal/domains/memo/model"
	"daily/internal/domains/memo/repository"
	"daily/shared/failure"
	"daily/shared/result"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var memoColumns = []string{"id", "title", "content", "status", "created_at"}

func newRepository(t *testing.T) (repository.Memo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	sqlxDB := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), mock
}

func expectExist(mock sqlmock.Sqlmock, id int, exist bool) {
	mock.ExpectPrepare(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM memos WHERE (memos.id = $1))")).
		ExpectQuery().
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exist))
}

func TestMemoRepository_Add(t *testing.T) {
	ctx := context.Background()
	insertQuery := regexp.QuoteMeta("INSERT INTO memos (title, content, status) VALUES ($1, $2, $3) RETURNING id")

	t.Run("nil entity", func(t *testing.T) {
		repo, _ := newRepository(t)

		_, err := repo.Add(ctx, nil)

		assert.ErrorIs(t, err, failure.ErrInvalidArgument)
	})

	t.Run("blank title never touches storage", func(t *testing.T) {
		repo, _ := newRepository(t)

		res, err := repo.Add(ctx, &model.Memo{Title: "  ", Content: "milk"})

		require.NoError(t, err)
		assert.Equal(t, result.Fail(repository.AddIncomplete), res)
	})

	t.Run("blank content", func(t *testing.T) {
		repo, _ := newRepository(t)

		res, err := repo.Add(ctx, &model.Memo{Title: "Groceries"})

		require.NoError(t, err)
		assert.Equal(t, repository.AddIncomplete, res.Code)
		assert.False(t, res.Success)
	})

	t.Run("persisted", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(insertQuery).
			ExpectQuery().
			WithArgs("Groceries", "milk", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

		memo := &model.Memo{Title: "Groceries", Content: "milk", Status: 1}
		res, err := repo.Add(ctx, memo)

		require.NoError(t, err)
		assert.Equal(t, result.OK(), res)
		assert.Equal(t, 12, memo.ID)
	})

	t.Run("no row written", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(insertQuery).
			ExpectQuery().
			WithArgs("Groceries", "milk", 0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		res, err := repo.Add(ctx, &model.Memo{Title: "Groceries", Content: "milk"})

		require.NoError(t, err)
		assert.Equal(t, result.Fail(repository.AddNotWritten), res)
	})

	t.Run("storage fault", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(insertQuery).
			ExpectQuery().
			WillReturnError(sql.ErrConnDone)

		_, err := repo.Add(ctx, &model.Memo{Title: "Groceries", Content: "milk"})

		require.Error(t, err)
		assert.True(t, failure.IsStorage(err))
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestMemoRepository_Delete(t *testing.T) {
	ctx := context.Background()
	deleteQuery := regexp.QuoteMeta("DELETE FROM memos WHERE (memos.id = $1)")

	tests := []struct {
		name      string
		id        int
		setupMock func(mock sqlmock.Sqlmock)
		want      result.Result
	}{
		{
			name:      "zero id",
			id:        0,
			setupMock: func(sqlmock.Sqlmock) {},
			want:      result.Fail(repository.DeleteInvalidID),
		},
		{
			name:      "negative id",
			id:        -4,
			setupMock: func(sqlmock.Sqlmock) {},
			want:      result.Fail(repository.DeleteInvalidID),
		},
		{
			name: "not found",
			id:   7,
			setupMock: func(mock sqlmock.Sqlmock) {
				expectExist(mock, 7, false)
			},
			want: result.Fail(repository.DeleteNotFound),
		},
		{
			name: "deleted",
			id:   7,
			setupMock: func(mock sqlmock.Sqlmock) {
				expectExist(mock, 7, true)
				mock.ExpectExec(deleteQuery).WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: result.OK(),
		},
		{
			name: "vanished between check and delete",
			id:   7,
			setupMock: func(mock sqlmock.Sqlmock) {
				expectExist(mock, 7, true)
				mock.ExpectExec(deleteQuery).WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			want: result.Fail(repository.DeleteNotApplied),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			tt.setupMock(mock)

			res, err := repo.Delete(ctx, tt.id)

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestMemoRepository_Update(t *testing.T) {
	ctx := context.Background()
	updateQuery := regexp.QuoteMeta("UPDATE memos SET content = $1, status = $2, title = $3 WHERE (memos.id = $4)")

	t.Run("nil entity", func(t *testing.T) {
		repo, _ := newRepository(t)

		_, err := repo.Update(ctx, nil)

		assert.ErrorIs(t, err, failure.ErrInvalidArgument)
	})

	t.Run("blank content", func(t *testing.T) {
		repo, _ := newRepository(t)

		res, err := repo.Update(ctx, &model.Memo{ID: 1, Title: "a", Content: "\t"})

		require.NoError(t, err)
		assert.Equal(t, result.Fail(repository.UpdateIncomplete), res)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newRepository(t)
		expectExist(mock, 5, false)

		res, err := repo.Update(ctx, &model.Memo{ID: 5, Title: "a", Content: "b"})

		require.NoError(t, err)
		assert.Equal(t, result.Fail(repository.UpdateNotFound), res)
	})

	t.Run("updated", func(t *testing.T) {
		repo, mock := newRepository(t)
		expectExist(mock, 5, true)
		mock.ExpectExec(updateQuery).WithArgs("b", 0, "a", 5).WillReturnResult(sqlmock.NewResult(0, 1))

		res, err := repo.Update(ctx, &model.Memo{ID: 5, Title: "a", Content: "b", Status: 0})

		require.NoError(t, err)
		assert.Equal(t, result.OK(), res)
	})

	t.Run("no row affected", func(t *testing.T) {
		repo, mock := newRepository(t)
		expectExist(mock, 5, true)
		mock.ExpectExec(updateQuery).WithArgs("b", 1, "a", 5).WillReturnResult(sqlmock.NewResult(0, 0))

		res, err := repo.Update(ctx, &model.Memo{ID: 5, Title: "a", Content: "b", Status: 1})

		require.NoError(t, err)
		assert.Equal(t, result.Fail(repository.UpdateNotApplied), res)
	})

	t.Run("storage fault", func(t *testing.T) {
		repo, mock := newRepository(t)
		mock.ExpectPrepare(regexp.QuoteMeta("SELECT EXISTS")).ExpectQuery().WillReturnError(sql.ErrConnDone)

		_, err := repo.Update(ctx, &model.Memo{ID: 5, Title: "a", Content: "b"})

		assert.True(t, failure.IsStorage(err))
	})
}

func TestMemoRepository_GetAll(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	t.Run("lists every memo", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("SELECT memos.id, memos.title, memos.content, memos.status, memos.created_at FROM memos ORDER BY memos.id ASC")).
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows(memoColumns).
				AddRow(1, "a", "b", 0, created).
				AddRow(2, "c", "d", 1, created))

		memos, res, err := repo.GetAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, result.Done(repository.ListOK), res)
		assert.Len(t, memos, 2)
		assert.Equal(t, "c", memos[1].Title)
	})

	t.Run("empty table", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("FROM memos")).
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows(memoColumns))

		memos, res, err := repo.GetAll(ctx)

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.NotNil(t, memos)
		assert.Empty(t, memos)
	})
}

func TestMemoRepository_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("blank text is unfiltered", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("SELECT memos.id, memos.title, memos.content, memos.status, memos.created_at FROM memos ORDER BY memos.id ASC")).
			ExpectQuery().
			WithoutArgs().
			WillReturnRows(sqlmock.NewRows(memoColumns).AddRow(1, "a", "b", 0, time.Now()))

		memos, res, err := repo.Search(ctx, "   ")

		require.NoError(t, err)
		assert.Equal(t, repository.ListOK, res.Code)
		assert.Len(t, memos, 1)
	})

	t.Run("matches title or content", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("WHERE (LOWER(memos.title) LIKE LOWER($1) OR LOWER(memos.content) LIKE LOWER($2)) ORDER BY memos.id ASC")).
			ExpectQuery().
			WithArgs("%milk%", "%milk%").
			WillReturnRows(sqlmock.NewRows(memoColumns))

		memos, res, err := repo.Search(ctx, "milk")

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Empty(t, memos)
	})
}
