// Package seed はサンプルデータの冪等な初期投入を提供する。
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/hitoshi/bestcars/internal/sentiment"
)

// seedLockKey はシード処理を直列化するためのアドバイザリロックのキー。
// 空のストアに対する同時初回リクエストの二重シードを防ぐ。
const seedLockKey = int64(0x6265737463617273)

// MetricsRecorder はシード実行の記録に必要なインターフェース。
type MetricsRecorder interface {
	RecordSeedRun()
}

// Service はサンプルデータのシーダー。
// EnsureSeededは全リクエストから安全に呼べる冪等な操作として実装する。
type Service struct {
	db      *sql.DB
	metrics MetricsRecorder
}

// New はServiceを生成する。metricsはnilでもよい。
func New(db *sql.DB, metrics MetricsRecorder) *Service {
	return &Service{db: db, metrics: metrics}
}

// EnsureSeeded はストアが空の場合のみサンプルデータを投入する。
// 販売店が1件でも存在すれば何もしない。
//
// 同時実行対策として、投入はアドバイザリロックを取った単一トランザクション内で
// 行い、ロック取得後に存在チェックをやり直す。メーカー・モデルは自然キー
// （メーカー名、(メーカー, モデル名)）に対するON CONFLICT DO NOTHINGで
// get-or-createの意味論を持ち、部分的な再実行でも重複しない。
func (s *Service) EnsureSeeded(ctx context.Context) error {
	// 高速パス: 既にシード済みならトランザクションを開かない
	seeded, err := s.dealersExist(ctx, s.db)
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	// 同時初回リクエストはここで直列化される
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, seedLockKey); err != nil {
		return fmt.Errorf("failed to acquire seed lock: %w", err)
	}

	// ロック取得までの間に他のリクエストがシード済みの可能性があるため再確認
	seeded, err = s.dealersExist(ctx, tx)
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}

	dealerIDs, err := seedDealers(ctx, tx)
	if err != nil {
		return err
	}
	if err := seedReviews(ctx, tx, dealerIDs); err != nil {
		return err
	}
	if err := seedCatalog(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordSeedRun()
	}
	slog.Info("sample data seeded",
		slog.Int("dealers", len(dealerSeeds)),
		slog.Int("reviews", len(reviewSeeds)),
		slog.Int("car_makes", len(makeSeeds)),
		slog.Int("car_models", len(modelSeeds)),
	)
	return nil
}

// querier は*sql.DBと*sql.Txの共通部分。
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Service) dealersExist(ctx context.Context, q querier) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM dealers)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check seed state: %w", err)
	}
	return exists, nil
}

func seedDealers(ctx context.Context, tx querier) ([]int64, error) {
	ids := make([]int64, 0, len(dealerSeeds))
	for _, d := range dealerSeeds {
		var id int64
		err := tx.QueryRowContext(ctx,
			`INSERT INTO dealers (full_name, short_name, address, city, state, st, zip_code, lat, lng)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 RETURNING id`,
			d.fullName, d.shortName, d.address, d.city, d.state, d.st, d.zipCode, d.lat, d.lng,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to seed dealer %q: %w", d.fullName, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedReviews(ctx context.Context, tx querier, dealerIDs []int64) error {
	for _, r := range reviewSeeds {
		// 不変条件: sentimentは投入時点の本文から分類器で導出する
		label := sentiment.Classify(r.text)
		_, err := tx.ExecContext(ctx,
			`INSERT INTO reviews (dealer_id, name, review, purchase, car_make, car_model, car_year, sentiment)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			dealerIDs[r.dealerIndex], r.name, r.text, r.purchase,
			r.carMake, r.carModel, r.carYear, string(label),
		)
		if err != nil {
			return fmt.Errorf("failed to seed review by %q: %w", r.name, err)
		}
	}
	return nil
}

func seedCatalog(ctx context.Context, tx querier) error {
	// get-or-create: メーカー名を自然キーとして重複投入を避ける
	makeIDs := make(map[string]int64, len(makeSeeds))
	for _, m := range makeSeeds {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO car_makes (name, country) VALUES ($1, $2)
			 ON CONFLICT (name) DO NOTHING`,
			m.name, m.country,
		); err != nil {
			return fmt.Errorf("failed to seed car make %q: %w", m.name, err)
		}

		var id int64
		if err := tx.QueryRowContext(ctx,
			`SELECT id FROM car_makes WHERE name = $1`,
			m.name,
		).Scan(&id); err != nil {
			return fmt.Errorf("failed to resolve car make %q: %w", m.name, err)
		}
		makeIDs[m.name] = id
	}

	// get-or-create: (メーカー, モデル名) の組を自然キーとして重複投入を避ける
	for _, m := range modelSeeds {
		makeID, ok := makeIDs[m.makeName]
		if !ok {
			return fmt.Errorf("unknown car make %q for model %q", m.makeName, m.name)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO car_models (car_make_id, name, car_type, year) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (car_make_id, name) DO NOTHING`,
			makeID, m.name, string(m.carType), m.year,
		); err != nil {
			return fmt.Errorf("failed to seed car model %q %q: %w", m.makeName, m.name, err)
		}
	}

	return nil
}
