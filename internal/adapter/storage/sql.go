package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.SnapshotStorage = (*SQLStorage)(nil)

var ErrInvalidNamespace = errors.New("invalid namespace")

// A SQLStorage keeps snapshots in the client_snapshots table.
type SQLStorage struct {
	sqldb sqldb
}

func NewSQLStorage(sqldb sqldb) SQLStorage {
	return SQLStorage{sqldb}
}

func (s SQLStorage) Load(ctx context.Context, namespace string) ([]byte, error) {
	const op = "SQLStorage.Load"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !validNamespace(namespace) {
		return nil, fmt.Errorf("%s: %q: %w", op, namespace, ErrInvalidNamespace)
	}

	query := `SELECT payload FROM client_snapshots WHERE namespace = $1;`

	var payload []byte
	err := s.sqldb.QueryRowContext(ctx, query, namespace).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return payload, nil
}

func (s SQLStorage) Save(
	ctx context.Context, namespace string, data []byte,
) (saveErr error) {
	const op = "SQLStorage.Save"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !validNamespace(namespace) {
		return fmt.Errorf("%s: %q: %w", op, namespace, ErrInvalidNamespace)
	}

	tx, err := s.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if saveErr == nil {
			if err := tx.Commit(); err != nil {
				saveErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	query := `
		INSERT INTO client_snapshots (namespace, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (namespace) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := tx.ExecContext(ctx, query, namespace, string(data)); err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}

	return nil
}
