package seed

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// RecordSeedRunの呼び出し回数を数えるフェイク
type fakeMetrics struct {
	seedRuns int
}

func (f *fakeMetrics) RecordSeedRun() {
	f.seedRuns++
}

// シード済みのストアに対しては何もしないことを検証
func TestService_EnsureSeeded_AlreadySeeded(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// 高速パスの存在チェックのみ。トランザクションは開かれない
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	metrics := &fakeMetrics{}
	svc := New(db, metrics)
	if err := svc.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("EnsureSeeded returned error: %v", err)
	}
	if metrics.seedRuns != 0 {
		t.Errorf("seedRuns = %d, want 0", metrics.seedRuns)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// 空のストアに対して全サンプルデータが単一トランザクションで投入されることを検証
func TestService_EnsureSeeded_EmptyStore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").
		WithArgs(seedLockKey).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// ロック取得後の再チェック
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	for i, d := range dealerSeeds {
		mock.ExpectQuery("INSERT INTO dealers").
			WithArgs(d.fullName, d.shortName, d.address, d.city, d.state, d.st, d.zipCode, d.lat, d.lng).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(i + 1)))
	}

	// sentimentは投入時に本文から導出される
	wantSentiments := []string{"positive", "positive", "positive", "positive", "negative", "positive"}
	for i, r := range reviewSeeds {
		mock.ExpectExec("INSERT INTO reviews").
			WithArgs(int64(r.dealerIndex+1), r.name, r.text, r.purchase,
				r.carMake, r.carModel, r.carYear, wantSentiments[i]).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	for i, m := range makeSeeds {
		mock.ExpectExec("INSERT INTO car_makes").
			WithArgs(m.name, m.country).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT id FROM car_makes").
			WithArgs(m.name).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(i + 1)))
	}

	makeIDs := map[string]int64{}
	for i, m := range makeSeeds {
		makeIDs[m.name] = int64(i + 1)
	}
	for _, m := range modelSeeds {
		mock.ExpectExec("INSERT INTO car_models").
			WithArgs(makeIDs[m.makeName], m.name, string(m.carType), m.year).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	mock.ExpectCommit()

	metrics := &fakeMetrics{}
	svc := New(db, metrics)
	if err := svc.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("EnsureSeeded returned error: %v", err)
	}
	if metrics.seedRuns != 1 {
		t.Errorf("seedRuns = %d, want 1", metrics.seedRuns)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// ロック取得中に他プロセスがシード済みになった場合はロールバックして戻ることを検証
func TestService_EnsureSeeded_SeededDuringLockWait(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").
		WithArgs(seedLockKey).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// 再チェックで既にシード済みと判明
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	metrics := &fakeMetrics{}
	svc := New(db, metrics)
	if err := svc.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("EnsureSeeded returned error: %v", err)
	}
	if metrics.seedRuns != 0 {
		t.Errorf("seedRuns = %d, want 0", metrics.seedRuns)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// サンプルデータセットの整合性を検証
func TestSeedData_Integrity(t *testing.T) {
	if len(dealerSeeds) != 10 {
		t.Errorf("len(dealerSeeds) = %d, want 10", len(dealerSeeds))
	}
	if len(reviewSeeds) != 6 {
		t.Errorf("len(reviewSeeds) = %d, want 6", len(reviewSeeds))
	}
	if len(makeSeeds) != 10 {
		t.Errorf("len(makeSeeds) = %d, want 10", len(makeSeeds))
	}
	if len(modelSeeds) != 23 {
		t.Errorf("len(modelSeeds) = %d, want 23", len(modelSeeds))
	}

	// 各レビューは実在する販売店を参照する
	for _, r := range reviewSeeds {
		if r.dealerIndex < 0 || r.dealerIndex >= len(dealerSeeds) {
			t.Errorf("review by %q references dealer index %d out of range", r.name, r.dealerIndex)
		}
	}

	// 各モデルは実在するメーカーを参照する
	makes := map[string]bool{}
	for _, m := range makeSeeds {
		makes[m.name] = true
	}
	for _, m := range modelSeeds {
		if !makes[m.makeName] {
			t.Errorf("model %q references unknown make %q", m.name, m.makeName)
		}
	}
}
