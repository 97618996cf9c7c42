package repository_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/easymenu/internal/catalog"
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	repository "github.com/aaravmahajanofficial/easymenu/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storeKey = "easymenu_premium_v3_db"

func setupCatalogRepoTest(t *testing.T) (repository.CatalogRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewCatalogRepo(db)
	require.NotNil(t, repo, "NewCatalogRepo should return a non-nil repository")

	return repo, mock
}

func TestCatalogRepository_GetState(t *testing.T) {
	ctx := t.Context()
	expectedSQL := `SELECT state\s+FROM catalog_states\s+WHERE store_key = \$1`

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupCatalogRepoTest(t)
		state := catalog.DefaultState()
		state.Categories = append(state.Categories, models.Category{ID: "c1", Name: "Pizzas", IsActive: true})
		stateJSON, err := json.Marshal(state)
		require.NoError(t, err)

		mock.ExpectQuery(expectedSQL).
			WithArgs(storeKey).
			WillReturnRows(sqlmock.NewRows([]string{"state"}).AddRow(stateJSON))

		// Act
		got, err := repo.GetState(ctx, storeKey)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Nova Loja", got.Business.Name)
		assert.Equal(t, state.Business.OperationalHours, got.Business.OperationalHours)
		require.Len(t, got.Categories, 1)
		assert.Equal(t, "Pizzas", got.Categories[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		// Arrange
		repo, mock := setupCatalogRepoTest(t)
		mock.ExpectQuery(expectedSQL).WithArgs(storeKey).WillReturnError(sql.ErrNoRows)

		// Act
		got, err := repo.GetState(ctx, storeKey)

		// Assert
		assert.Nil(t, got)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Malformed Document", func(t *testing.T) {
		// Arrange
		repo, mock := setupCatalogRepoTest(t)
		mock.ExpectQuery(expectedSQL).
			WithArgs(storeKey).
			WillReturnRows(sqlmock.NewRows([]string{"state"}).AddRow([]byte(`{"business": [1,2,3]}`)))

		// Act
		got, err := repo.GetState(ctx, storeKey)

		// Assert
		assert.Nil(t, got)
		assert.ErrorIs(t, err, repository.ErrMalformedState)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		// Arrange
		repo, mock := setupCatalogRepoTest(t)
		dbErr := errors.New("connection refused")
		mock.ExpectQuery(expectedSQL).WithArgs(storeKey).WillReturnError(dbErr)

		// Act
		got, err := repo.GetState(ctx, storeKey)

		// Assert
		assert.Nil(t, got)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, repository.ErrMalformedState)
		assert.Contains(t, err.Error(), "querying database")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogRepository_SaveState(t *testing.T) {
	ctx := t.Context()
	expectedSQL := `INSERT INTO catalog_states \(store_key, state, updated_at\)\s+VALUES \(\$1, \$2, NOW\(\)\)\s+ON CONFLICT \(store_key\) DO UPDATE`

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupCatalogRepoTest(t)
		state := catalog.DefaultState()
		stateJSON, err := json.Marshal(&state)
		require.NoError(t, err)

		mock.ExpectExec(expectedSQL).
			WithArgs(storeKey, stateJSON).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err = repo.SaveState(ctx, storeKey, &state)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		// Arrange
		repo, mock := setupCatalogRepoTest(t)
		state := catalog.DefaultState()
		dbErr := errors.New("disk full")

		mock.ExpectExec(expectedSQL).
			WithArgs(storeKey, sqlmock.AnyArg()).
			WillReturnError(dbErr)

		// Act
		err := repo.SaveState(ctx, storeKey, &state)

		// Assert
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to save catalog state")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInitSchema(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS catalog_states`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repository.InitSchema(t.Context(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
