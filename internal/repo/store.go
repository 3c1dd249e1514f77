package repo

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

var ErrorNotFound = errors.New("not found")

// Open выбирает бэкенд по схеме URL: postgres:// и postgresql:// идут в pgx,
// всё остальное считается путем к файлу SQLite.
func Open(ctx context.Context, databaseURL string, logger *zap.Logger) (Store, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		store, err := OpenPostgres(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Opened task store", zap.String("backend", "postgres"))
		return store, nil
	default:
		path := sqlitePath(databaseURL)
		store, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		logger.Info("Opened task store", zap.String("backend", "sqlite"), zap.String("path", path))
		return store, nil
	}
}

func sqlitePath(databaseURL string) string {
	path := strings.TrimPrefix(databaseURL, "sqlite://")
	path = strings.TrimPrefix(path, "file:")
	if path == "" {
		return "./database.db"
	}
	return path
}
