package repo

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

// runStoreContract прогоняет одинаковые проверки для любого бэкенда
func runStoreContract(t *testing.T, store Store) {
	ctx := context.Background()

	openSession := func(t *testing.T) Session {
		t.Helper()
		sess, err := store.OpenSession(ctx)
		require.NoError(t, err)
		t.Cleanup(func() { sess.Close() })
		return sess
	}

	t.Run("create assigns id and keeps fields", func(t *testing.T) {
		sess := openSession(t)
		_, err := sess.DeleteAll(ctx)
		require.NoError(t, err)

		created, err := sess.Create(ctx, model.TaskInput{Title: "A", Describe: "B"})
		require.NoError(t, err)

		assert.NotZero(t, created.ID)
		assert.Equal(t, "A", created.Title)
		assert.Equal(t, "B", created.Describe)
		assert.False(t, created.Completed)
	})

	t.Run("list returns tasks in insertion order", func(t *testing.T) {
		sess := openSession(t)
		_, err := sess.DeleteAll(ctx)
		require.NoError(t, err)

		var want []model.Task
		for i := 0; i < 3; i++ {
			created, err := sess.Create(ctx, model.TaskInput{
				Title:     fmt.Sprintf("Task %d", i),
				Describe:  fmt.Sprintf("Describe %d", i),
				Completed: i%2 == 1,
			})
			require.NoError(t, err)
			want = append(want, created)
		}

		got, err := sess.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("list on empty table is empty, not nil", func(t *testing.T) {
		sess := openSession(t)
		_, err := sess.DeleteAll(ctx)
		require.NoError(t, err)

		got, err := sess.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("update overwrites fields and keeps id", func(t *testing.T) {
		sess := openSession(t)
		created, err := sess.Create(ctx, model.TaskInput{Title: "Old", Describe: "Old describe"})
		require.NoError(t, err)

		updated, err := sess.Update(ctx, created.WithInput(model.TaskInput{
			Title:     "New",
			Describe:  "New describe",
			Completed: true,
		}))
		require.NoError(t, err)

		assert.Equal(t, model.Task{ID: created.ID, Title: "New", Describe: "New describe", Completed: true}, updated)

		fetched, err := sess.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, fetched)
	})

	t.Run("update of missing id is not found", func(t *testing.T) {
		sess := openSession(t)
		_, err := sess.Update(ctx, model.Task{ID: 9999, Title: "x"})
		assert.ErrorIs(t, err, ErrorNotFound)

		_, err = sess.Get(ctx, 9999)
		assert.ErrorIs(t, err, ErrorNotFound)
	})

	t.Run("delete removes once", func(t *testing.T) {
		sess := openSession(t)
		created, err := sess.Create(ctx, model.TaskInput{Title: "Gone", Describe: "soon"})
		require.NoError(t, err)

		require.NoError(t, sess.Delete(ctx, created.ID))
		assert.ErrorIs(t, sess.Delete(ctx, created.ID), ErrorNotFound)

		_, err = sess.Get(ctx, created.ID)
		assert.ErrorIs(t, err, ErrorNotFound)
	})

	t.Run("delete all is idempotent", func(t *testing.T) {
		sess := openSession(t)
		for i := 0; i < 2; i++ {
			_, err := sess.Create(ctx, model.TaskInput{Title: "t", Describe: "d"})
			require.NoError(t, err)
		}

		_, err := sess.DeleteAll(ctx)
		require.NoError(t, err)

		n, err := sess.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		got, err := sess.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("concurrent sessions create distinct tasks", func(t *testing.T) {
		const goroutines = 10

		var wg sync.WaitGroup
		ids := make([]int64, goroutines)
		errs := make([]error, goroutines)

		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				sess, err := store.OpenSession(ctx)
				if err != nil {
					errs[idx] = err
					return
				}
				defer sess.Close()

				created, err := sess.Create(ctx, model.TaskInput{
					Title:    fmt.Sprintf("Concurrent %d", idx),
					Describe: "parallel",
				})
				ids[idx], errs[idx] = created.ID, err
			}(i)
		}
		wg.Wait()

		seen := make(map[int64]bool, goroutines)
		for i, err := range errs {
			require.NoError(t, err, "goroutine %d should not error", i)
			assert.False(t, seen[ids[i]], "id %d assigned twice", ids[i])
			seen[ids[i]] = true
		}
	})
}
