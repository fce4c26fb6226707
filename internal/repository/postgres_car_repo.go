package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresCarRepo はPostgreSQLを使用した車カタログリポジトリ。
type PostgresCarRepo struct {
	db *sql.DB
}

// NewPostgresCarRepo はPostgresCarRepoを生成する。
func NewPostgresCarRepo(db *sql.DB) *PostgresCarRepo {
	return &PostgresCarRepo{db: db}
}

// ListModelsWithMake は全車モデルをメーカー名付きでID昇順で返す。
func (r *PostgresCarRepo) ListModelsWithMake(ctx context.Context) ([]CarModelWithMake, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT cm.id, cm.car_make_id, cm.name, cm.car_type, cm.year, mk.name
		 FROM car_models cm
		 JOIN car_makes mk ON mk.id = cm.car_make_id
		 ORDER BY cm.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list car models: %w", err)
	}
	defer rows.Close()

	models := []CarModelWithMake{}
	for rows.Next() {
		var m CarModelWithMake
		if err := rows.Scan(
			&m.ID, &m.CarMakeID, &m.Name, &m.CarType, &m.Year, &m.MakeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan car model row: %w", err)
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate car model rows: %w", err)
	}

	return models, nil
}

// compile-time interface check
var _ CarRepository = (*PostgresCarRepo)(nil)
