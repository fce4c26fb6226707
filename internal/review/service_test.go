package review

import (
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/bestcars/internal/model"
	"github.com/hitoshi/bestcars/internal/security"
)

type fakeReviewRepo struct {
	created              []*model.Review
	listByDealerIDFunc   func(ctx context.Context, dealerID int64) ([]model.Review, error)
	createFunc           func(ctx context.Context, review *model.Review) error
}

func (f *fakeReviewRepo) ListByDealerID(ctx context.Context, dealerID int64) ([]model.Review, error) {
	return f.listByDealerIDFunc(ctx, dealerID)
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *model.Review) error {
	f.created = append(f.created, review)
	if f.createFunc != nil {
		return f.createFunc(ctx, review)
	}
	review.ID = int64(len(f.created))
	return nil
}

type fakeDealerRepo struct {
	findByIDFunc func(ctx context.Context, id int64) (*model.Dealer, error)
}

func (f *fakeDealerRepo) ListAll(ctx context.Context) ([]model.Dealer, error)                 { return nil, nil }
func (f *fakeDealerRepo) ListByState(ctx context.Context, state string) ([]model.Dealer, error) { return nil, nil }
func (f *fakeDealerRepo) Exists(ctx context.Context) (bool, error)                            { return true, nil }

func (f *fakeDealerRepo) FindByID(ctx context.Context, id int64) (*model.Dealer, error) {
	return f.findByIDFunc(ctx, id)
}

type fakeReviewMetrics struct {
	sentiments []string
}

func (f *fakeReviewMetrics) RecordReviewCreated(sentiment string) {
	f.sentiments = append(f.sentiments, sentiment)
}

func existingDealer(id int64) *fakeDealerRepo {
	return &fakeDealerRepo{
		findByIDFunc: func(ctx context.Context, got int64) (*model.Dealer, error) {
			if got == id {
				return &model.Dealer{ID: id, FullName: "Sunshine Toyota"}, nil
			}
			return nil, nil
		},
	}
}

// Addがサニタイズ済み本文からsentimentを導出して保存することを検証
func TestService_Add(t *testing.T) {
	reviews := &fakeReviewRepo{}
	metrics := &fakeReviewMetrics{}
	svc := NewService(reviews, existingDealer(1), security.NewTextSanitizer(), metrics)

	user := &model.User{ID: "u-1", Username: "alice", FirstName: "Alice", LastName: "Smith"}
	year := 2022
	rv, err := svc.Add(context.Background(), user, AddParams{
		DealerID:     1,
		Text:         "Amazing dealership, very friendly staff! <script>alert(1)</script>",
		Purchase:     true,
		PurchaseDate: "2023-06-15",
		CarMake:      "Toyota",
		CarModel:     "Camry",
		CarYear:      &year,
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if rv.Sentiment != model.SentimentPositive {
		t.Errorf("Sentiment = %q, want %q", rv.Sentiment, model.SentimentPositive)
	}
	if rv.Name != "Alice Smith" {
		t.Errorf("Name = %q, want %q", rv.Name, "Alice Smith")
	}
	if rv.UserID == nil || *rv.UserID != "u-1" {
		t.Errorf("UserID = %v, want u-1", rv.UserID)
	}
	// scriptタグは保存前に除去される
	if got := rv.Text; got != "Amazing dealership, very friendly staff!" {
		t.Errorf("Text = %q, sanitizer should strip markup", got)
	}
	if rv.PurchaseDate == nil || rv.PurchaseDate.Format("2006-01-02") != "2023-06-15" {
		t.Errorf("PurchaseDate = %v, want 2023-06-15", rv.PurchaseDate)
	}
	if rv.CarYear == nil || *rv.CarYear != 2022 {
		t.Errorf("CarYear = %v, want 2022", rv.CarYear)
	}
	if len(metrics.sentiments) != 1 || metrics.sentiments[0] != "positive" {
		t.Errorf("metrics.sentiments = %v, want [positive]", metrics.sentiments)
	}
}

// 姓名が空のユーザーは表示名がユーザー名にフォールバックすることを検証
func TestService_Add_NameFallsBackToUsername(t *testing.T) {
	reviews := &fakeReviewRepo{}
	svc := NewService(reviews, existingDealer(1), security.NewTextSanitizer(), nil)

	user := &model.User{ID: "u-2", Username: "bob"}
	rv, err := svc.Add(context.Background(), user, AddParams{DealerID: 1, Text: "ok"})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if rv.Name != "bob" {
		t.Errorf("Name = %q, want %q", rv.Name, "bob")
	}
}

// 不正な日付とゼロ年式は黙ってnilに正規化されることを検証
func TestService_Add_NormalizesOptionalFields(t *testing.T) {
	reviews := &fakeReviewRepo{}
	svc := NewService(reviews, existingDealer(1), security.NewTextSanitizer(), nil)

	zero := 0
	user := &model.User{ID: "u-3", Username: "carol"}
	rv, err := svc.Add(context.Background(), user, AddParams{
		DealerID:     1,
		Text:         "fine",
		PurchaseDate: "not-a-date",
		CarYear:      &zero,
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if rv.PurchaseDate != nil {
		t.Errorf("PurchaseDate = %v, want nil for invalid input", rv.PurchaseDate)
	}
	if rv.CarYear != nil {
		t.Errorf("CarYear = %v, want nil for zero input", rv.CarYear)
	}
}

// 未存在の販売店へのAddはErrDealerNotFoundになることを検証
func TestService_Add_DealerNotFound(t *testing.T) {
	reviews := &fakeReviewRepo{}
	svc := NewService(reviews, existingDealer(1), security.NewTextSanitizer(), nil)

	user := &model.User{ID: "u-1", Username: "alice"}
	_, err := svc.Add(context.Background(), user, AddParams{DealerID: 999, Text: "hello"})
	if !errors.Is(err, ErrDealerNotFound) {
		t.Errorf("Add error = %v, want ErrDealerNotFound", err)
	}
	if len(reviews.created) != 0 {
		t.Errorf("no review should be persisted, got %d", len(reviews.created))
	}
}

// ListByDealerが未存在の販売店でErrDealerNotFoundを返すことを検証
func TestService_ListByDealer_DealerNotFound(t *testing.T) {
	reviews := &fakeReviewRepo{
		listByDealerIDFunc: func(ctx context.Context, dealerID int64) ([]model.Review, error) {
			t.Fatal("repository should not be queried for a missing dealer")
			return nil, nil
		},
	}
	svc := NewService(reviews, existingDealer(1), security.NewTextSanitizer(), nil)

	_, err := svc.ListByDealer(context.Background(), 999)
	if !errors.Is(err, ErrDealerNotFound) {
		t.Errorf("ListByDealer error = %v, want ErrDealerNotFound", err)
	}
}

// ListByDealerがリポジトリの結果をそのまま返すことを検証
func TestService_ListByDealer(t *testing.T) {
	reviews := &fakeReviewRepo{
		listByDealerIDFunc: func(ctx context.Context, dealerID int64) ([]model.Review, error) {
			return []model.Review{
				{ID: 2, DealerID: dealerID, Sentiment: model.SentimentPositive},
				{ID: 1, DealerID: dealerID, Sentiment: model.SentimentNegative},
			}, nil
		},
	}
	svc := NewService(reviews, existingDealer(1), security.NewTextSanitizer(), nil)

	got, err := svc.ListByDealer(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByDealer returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].ID != 2 {
		t.Errorf("got[0].ID = %d, want 2", got[0].ID)
	}
}
