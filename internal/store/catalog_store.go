// Package store loads and saves the single catalog document of a store,
// reading through the Redis cache. It never fails: broken or missing
// storage degrades to the default catalog.
package store

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/aaravmahajanofficial/easymenu/internal/api/middleware"
	"github.com/aaravmahajanofficial/easymenu/internal/cache"
	"github.com/aaravmahajanofficial/easymenu/internal/catalog"
	"github.com/aaravmahajanofficial/easymenu/internal/metrics"
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	repository "github.com/aaravmahajanofficial/easymenu/internal/repositories"
)

type CatalogStore interface {
	Load(ctx context.Context) models.CatalogState
	Save(ctx context.Context, state models.CatalogState)
}

type catalogStore struct {
	repo     repository.CatalogRepository
	cache    cache.Cache
	storeKey string
}

func NewCatalogStore(repo repository.CatalogRepository, c cache.Cache, storeKey string) CatalogStore {
	return &catalogStore{repo: repo, cache: c, storeKey: storeKey}
}

func (s *catalogStore) Load(ctx context.Context) models.CatalogState {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("store_key", s.storeKey))
	cacheKey := cache.CatalogKey(s.storeKey)

	var cached models.CatalogState
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		logger.Warn("Catalog cache read failed", slog.Any("error", err))
	}
	if found {
		catalog.Normalize(&cached)
		return cached
	}

	state, err := s.repo.GetState(ctx, s.storeKey)
	switch {
	case err == nil:
		catalog.Normalize(state)

		if err := s.cache.Set(ctx, cacheKey, state, 0); err != nil {
			logger.Warn("Catalog cache write failed", slog.Any("error", err))
		}

		return *state

	case errors.Is(err, sql.ErrNoRows), errors.Is(err, repository.ErrMalformedState):
		if errors.Is(err, repository.ErrMalformedState) {
			logger.Warn("Stored catalog is unreadable, starting from defaults", slog.Any("error", err))
			metrics.RecordPersistenceFailure("load")
		} else {
			logger.Info("No catalog stored yet, seeding defaults")
		}

		def := catalog.DefaultState()
		s.Save(ctx, def)

		return def

	default:
		logger.Error("Catalog load failed, serving defaults", slog.Any("error", err))
		metrics.RecordPersistenceFailure("load")

		return catalog.DefaultState()
	}
}

func (s *catalogStore) Save(ctx context.Context, state models.CatalogState) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("store_key", s.storeKey))

	catalog.Normalize(&state)

	if err := s.repo.SaveState(ctx, s.storeKey, &state); err != nil {
		logger.Error("Catalog save failed", slog.Any("error", err))
		metrics.RecordPersistenceFailure("save")
		return
	}

	if err := s.cache.Delete(ctx, cache.CatalogKey(s.storeKey)); err != nil {
		logger.Warn("Catalog cache invalidation failed", slog.Any("error", err))
	}
}
