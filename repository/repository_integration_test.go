//go:build integration
// +build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/RigelNana/acervo/models"
	"github.com/RigelNana/acervo/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB starts a PostgreSQL container and returns a migrated gorm handle.
func setupTestDB(t *testing.T) *gorm.DB {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("acervo"),
		postgres.WithUsername("acervo"),
		postgres.WithPassword("acervo"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Book{}, &models.Paper{}, &models.FinalProject{}))
	return db
}

func book(title, isbn string) *models.Book {
	return &models.Book{
		Document: models.Document{
			Title: title, Author: "Author", KnowledgeArea: "CS",
			FileName: "f.pdf", Path: "/docs/f.pdf", Size: 2048, ExtensionType: "pdf", OwnerID: 1,
		},
		PublicationYear: "2021", Edition: "2", Publisher: "Pub", ISBN: isbn,
	}
}

func TestRepositories(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	books := repository.NewBookRepository(db)

	t.Run("soft delete keeps the row", func(t *testing.T) {
		b := book("Soft", "isbn-soft")
		require.NoError(t, books.Save(ctx, b))

		require.NoError(t, books.DeleteByID(ctx, b.ID))

		_, err := books.FindByID(ctx, b.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		raw, err := books.FindByIDUnscoped(ctx, b.ID)
		require.NoError(t, err)
		assert.False(t, raw.Active)

		exists, err := books.ExistsByID(ctx, b.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("isbn unique among active rows", func(t *testing.T) {
		first := book("Unique", "isbn-dup")
		require.NoError(t, books.Save(ctx, first))

		err := books.Save(ctx, book("Unique again", "isbn-dup"))
		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		assert.Equal(t, "23505", pgErr.Code)

		require.NoError(t, books.Delete(ctx, first))
		assert.NoError(t, books.Save(ctx, book("Reuses isbn", "isbn-dup")))
	})

	t.Run("created_at is not overwritten", func(t *testing.T) {
		b := book("Created", "isbn-created")
		require.NoError(t, books.Save(ctx, b))
		created := b.CreatedAt

		b.CreatedAt = created.Add(24 * time.Hour)
		b.Title = "Created v2"
		require.NoError(t, books.Save(ctx, b))

		stored, err := books.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.WithinDuration(t, created, stored.CreatedAt, time.Millisecond)
		assert.Equal(t, "Created v2", stored.Title)
	})

	t.Run("find by name and isbn", func(t *testing.T) {
		require.NoError(t, books.Save(ctx, book("Named", "isbn-n1")))
		require.NoError(t, books.Save(ctx, book("Named", "isbn-n2")))

		found, err := books.FindByName(ctx, "Named")
		require.NoError(t, err)
		assert.Len(t, found, 2)

		b, err := books.FindByISBN(ctx, "isbn-n2")
		require.NoError(t, err)
		assert.Equal(t, "Named", b.Title)
	})

	t.Run("find all pages and sorts", func(t *testing.T) {
		total, err := books.Count(ctx)
		require.NoError(t, err)

		rows, got, err := books.FindAll(ctx, repository.Pageable{Page: 0, Size: 2, Sort: []repository.Order{{Property: "title", Desc: true}}})
		require.NoError(t, err)
		assert.Equal(t, total, got)
		require.Len(t, rows, 2)
		assert.GreaterOrEqual(t, rows[0].Title, rows[1].Title)

		_, _, err = books.FindAll(ctx, repository.Pageable{Sort: []repository.Order{{Property: "password"}}})
		assert.ErrorIs(t, err, repository.ErrUnknownSortProperty)
	})

	t.Run("delete all", func(t *testing.T) {
		a, b := book("Batch", "isbn-b1"), book("Batch", "isbn-b2")
		require.NoError(t, books.Save(ctx, a))
		require.NoError(t, books.Save(ctx, b))

		require.NoError(t, books.DeleteAll(ctx, []*models.Book{a, b}))
		found, err := books.FindByName(ctx, "Batch")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("users by login and email", func(t *testing.T) {
		users := repository.NewUserRepository(db)
		u := &models.User{Login: "ana", Password: "hash", Email: "ana@example.com"}
		require.NoError(t, users.Save(ctx, u))

		byLogin, err := users.FindByLogin(ctx, "ana")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byLogin.ID)
		byEmail, err := users.FindByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byEmail.ID)
	})
}
