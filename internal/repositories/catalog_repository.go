package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/internal/utils"
)

// ErrMalformedState marks a stored document that could not be decoded.
var ErrMalformedState = errors.New("malformed catalog state")

type CatalogRepository interface {
	GetState(ctx context.Context, storeKey string) (*models.CatalogState, error)
	SaveState(ctx context.Context, storeKey string, state *models.CatalogState) error
}

type catalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepo(db *sql.DB) CatalogRepository {
	return &catalogRepository{DB: db}
}

func (r *catalogRepository) GetState(ctx context.Context, storeKey string) (*models.CatalogState, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT state
		FROM catalog_states
		WHERE store_key = $1
	`

	var stateJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, storeKey).Scan(&stateJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	state := &models.CatalogState{}
	if err := json.Unmarshal(stateJSON, state); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedState, err)
	}

	return state, nil
}

func (r *catalogRepository) SaveState(ctx context.Context, storeKey string, state *models.CatalogState) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog state: %w", err)
	}

	query := `
		INSERT INTO catalog_states (store_key, state, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (store_key) DO UPDATE
		SET state = EXCLUDED.state, updated_at = NOW()
	`

	if _, err := r.DB.ExecContext(dbCtx, query, storeKey, stateJSON); err != nil {
		return fmt.Errorf("failed to save catalog state: %w", err)
	}

	return nil
}
