package root

import (
	"context"
	"database/sql"

	"fitfive/internal/config"
	"fitfive/internal/engine"
	"fitfive/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewService(db), cleanup, nil
}
