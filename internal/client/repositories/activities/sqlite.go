package activities

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akarpovs/sportactive/internal/client/models"
	"github.com/akarpovs/sportactive/internal/common"
	"github.com/akarpovs/sportactive/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, list []models.Activity) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM activity_cache`); err != nil {
		return fmt.Errorf("failed to clear activity cache: %w", err)
	}
	for _, a := range list {
		data, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to marshal activity %d: %w", a.ID, err)
		}
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO activity_cache (id, data, fetched_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		`, a.ID, data)
		if err != nil {
			return fmt.Errorf("failed to cache activity %d: %w", a.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Activity, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM activity_cache ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to read activity cache: %w", err)
	}
	defer rows.Close()

	var result []models.Activity
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan cached activity: %w", err)
		}
		var a models.Activity
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cached activity: %w", err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity cache: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id int64) (*models.Activity, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `SELECT data FROM activity_cache WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("activity %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached activity %d: %w", id, err)
	}

	var a models.Activity
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached activity %d: %w", id, err)
	}
	return &a, nil
}

var _ Repository = (*SQLiteRepository)(nil)
