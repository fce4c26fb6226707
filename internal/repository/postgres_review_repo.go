package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/bestcars/internal/model"
)

// PostgresReviewRepo はPostgreSQLを使用したレビューリポジトリ。
type PostgresReviewRepo struct {
	db *sql.DB
}

// NewPostgresReviewRepo はPostgresReviewRepoを生成する。
func NewPostgresReviewRepo(db *sql.DB) *PostgresReviewRepo {
	return &PostgresReviewRepo{db: db}
}

// ListByDealerID は指定販売店のレビューを作成日時の降順で返す。
// 同時刻の場合はIDの降順でタイブレークし、挿入順の新しい方を先に返す。
func (r *PostgresReviewRepo) ListByDealerID(ctx context.Context, dealerID int64) ([]model.Review, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, dealer_id, user_id, name, review, purchase, purchase_date,
		        car_make, car_model, car_year, sentiment, created_at
		 FROM reviews
		 WHERE dealer_id = $1
		 ORDER BY created_at DESC, id DESC`,
		dealerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(
			&rv.ID, &rv.DealerID, &rv.UserID, &rv.Name, &rv.Text, &rv.Purchase,
			&rv.PurchaseDate, &rv.CarMake, &rv.CarModel, &rv.CarYear,
			&rv.Sentiment, &rv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate review rows: %w", err)
	}

	return reviews, nil
}

// Create はレビューを作成し、採番されたIDとサーバー付与のCreatedAtを書き戻す。
func (r *PostgresReviewRepo) Create(ctx context.Context, review *model.Review) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO reviews (dealer_id, user_id, name, review, purchase, purchase_date,
		                      car_make, car_model, car_year, sentiment)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		review.DealerID, review.UserID, review.Name, review.Text, review.Purchase,
		review.PurchaseDate, review.CarMake, review.CarModel, review.CarYear,
		review.Sentiment,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// compile-time interface check
var _ ReviewRepository = (*PostgresReviewRepo)(nil)
