package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/bestcars/internal/model"
)

// PostgresDealerRepo はPostgreSQLを使用した販売店リポジトリ。
type PostgresDealerRepo struct {
	db *sql.DB
}

// NewPostgresDealerRepo はPostgresDealerRepoを生成する。
func NewPostgresDealerRepo(db *sql.DB) *PostgresDealerRepo {
	return &PostgresDealerRepo{db: db}
}

const dealerColumns = `id, full_name, short_name, address, city, state, st, zip_code, lat, lng`

// ListAll は全販売店をID昇順で返す。
func (r *PostgresDealerRepo) ListAll(ctx context.Context) ([]model.Dealer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+dealerColumns+` FROM dealers ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list dealers: %w", err)
	}
	defer rows.Close()

	return scanDealers(rows)
}

// ListByState は州名の大文字小文字を無視した完全一致で販売店を返す。
func (r *PostgresDealerRepo) ListByState(ctx context.Context, state string) ([]model.Dealer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+dealerColumns+` FROM dealers WHERE lower(state) = lower($1) ORDER BY id`,
		state,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list dealers by state: %w", err)
	}
	defer rows.Close()

	return scanDealers(rows)
}

// FindByID は指定IDの販売店を取得する。見つからない場合はnilを返す。
func (r *PostgresDealerRepo) FindByID(ctx context.Context, id int64) (*model.Dealer, error) {
	dealer := &model.Dealer{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+dealerColumns+` FROM dealers WHERE id = $1`,
		id,
	).Scan(
		&dealer.ID, &dealer.FullName, &dealer.ShortName, &dealer.Address,
		&dealer.City, &dealer.State, &dealer.St, &dealer.ZipCode,
		&dealer.Lat, &dealer.Lng,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find dealer by ID: %w", err)
	}

	return dealer, nil
}

// Exists は販売店が1件以上存在するかを返す。
func (r *PostgresDealerRepo) Exists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM dealers)`,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check dealer existence: %w", err)
	}
	return exists, nil
}

func scanDealers(rows *sql.Rows) ([]model.Dealer, error) {
	dealers := []model.Dealer{}
	for rows.Next() {
		var d model.Dealer
		if err := rows.Scan(
			&d.ID, &d.FullName, &d.ShortName, &d.Address,
			&d.City, &d.State, &d.St, &d.ZipCode,
			&d.Lat, &d.Lng,
		); err != nil {
			return nil, fmt.Errorf("failed to scan dealer row: %w", err)
		}
		dealers = append(dealers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dealer rows: %w", err)
	}
	return dealers, nil
}

// compile-time interface check
var _ DealerRepository = (*PostgresDealerRepo)(nil)
