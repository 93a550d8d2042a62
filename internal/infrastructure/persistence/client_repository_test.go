package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cotizador/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockClientRepository creates a GormClientRepository with a mocked SQL connection
func newMockClientRepository(t *testing.T) (*GormClientRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormClientRepository(gormDB), mock, mockDB
}

func TestGormClientRepository_FindByID(t *testing.T) {
	t.Run("finds existing client", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "address"}).
			AddRow(int64(1), "Acme Corp", "billing@acme.com", "+52 55 1234 5678", "Av. Reforma 1")

		mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(1), 1).
			WillReturnRows(rows)

		client, err := repo.FindByID(context.Background(), 1)

		assert.NoError(t, err)
		require.NotNil(t, client)
		assert.Equal(t, int64(1), client.ID)
		assert.Equal(t, "Acme Corp", client.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns client not found error", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(42), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		client, err := repo.FindByID(context.Background(), 42)

		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Equal(t, shared.ErrClientNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClientRepository_FindAll(t *testing.T) {
	t.Run("applies search and pagination", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(int64(1), "Acme Corp", "billing@acme.com")

		mock.ExpectQuery(`SELECT \* FROM "clients" WHERE LOWER\(name\) LIKE \$1 OR LOWER\(email\) LIKE \$2 ORDER BY name ASC LIMIT .* OFFSET .*`).
			WithArgs("%acme%", "%acme%", 10, 10).
			WillReturnRows(rows)

		filter := shared.Filter{Page: 2, PageSize: 10, Search: "Acme"}
		clients, err := repo.FindAll(context.Background(), filter)

		assert.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, "Acme Corp", clients[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClientRepository_Count(t *testing.T) {
	t.Run("counts with search applied", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "clients" WHERE LOWER\(name\) LIKE \$1 OR LOWER\(email\) LIKE \$2`).
			WithArgs("%acme%", "%acme%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

		count, err := repo.Count(context.Background(), shared.Filter{Search: "Acme"})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClientRepository_Delete(t *testing.T) {
	t.Run("refuses to delete a referenced client", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "quotations" WHERE client_id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

		err := repo.Delete(context.Background(), 1)

		assert.Equal(t, shared.ErrInUse, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deletes an unreferenced client", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "quotations" WHERE client_id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
		mock.ExpectExec(`DELETE FROM "clients" WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 1)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when nothing was deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "quotations" WHERE client_id = \$1`).
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
		mock.ExpectExec(`DELETE FROM "clients" WHERE id = \$1`).
			WithArgs(int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 9)

		assert.Equal(t, shared.ErrClientNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
