package handler

import (
	"context"

	"github.com/hitoshi/bestcars/internal/auth"
	"github.com/hitoshi/bestcars/internal/model"
	"github.com/hitoshi/bestcars/internal/repository"
	"github.com/hitoshi/bestcars/internal/review"
)

// ハンドラーテストで共用するフィールド差し替え式のフェイク群

type fakeSeeder struct {
	err   error
	calls int
}

func (f *fakeSeeder) EnsureSeeded(ctx context.Context) error {
	f.calls++
	return f.err
}

type fakeDealerService struct {
	listDealersFunc func(ctx context.Context, state string) ([]model.Dealer, error)
	getDealerFunc   func(ctx context.Context, id int64) (*model.Dealer, error)
}

func (f *fakeDealerService) ListDealers(ctx context.Context, state string) ([]model.Dealer, error) {
	return f.listDealersFunc(ctx, state)
}

func (f *fakeDealerService) GetDealer(ctx context.Context, id int64) (*model.Dealer, error) {
	return f.getDealerFunc(ctx, id)
}

type fakeReviewService struct {
	listByDealerFunc func(ctx context.Context, dealerID int64) ([]model.Review, error)
	addFunc          func(ctx context.Context, user *model.User, params review.AddParams) (*model.Review, error)
}

func (f *fakeReviewService) ListByDealer(ctx context.Context, dealerID int64) ([]model.Review, error) {
	return f.listByDealerFunc(ctx, dealerID)
}

func (f *fakeReviewService) Add(ctx context.Context, user *model.User, params review.AddParams) (*model.Review, error) {
	return f.addFunc(ctx, user, params)
}

type fakeCarService struct {
	listCarsFunc func(ctx context.Context) ([]repository.CarModelWithMake, error)
}

func (f *fakeCarService) ListCars(ctx context.Context) ([]repository.CarModelWithMake, error) {
	return f.listCarsFunc(ctx)
}

type fakeAuthService struct {
	loginFunc    func(ctx context.Context, username, password string) (*model.User, *model.Session, error)
	registerFunc func(ctx context.Context, params auth.RegisterParams) (*model.User, *model.Session, error)
	logoutFunc   func(ctx context.Context, sessionID string) error
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (*model.User, *model.Session, error) {
	return f.loginFunc(ctx, username, password)
}

func (f *fakeAuthService) Register(ctx context.Context, params auth.RegisterParams) (*model.User, *model.Session, error) {
	return f.registerFunc(ctx, params)
}

func (f *fakeAuthService) Logout(ctx context.Context, sessionID string) error {
	if f.logoutFunc != nil {
		return f.logoutFunc(ctx, sessionID)
	}
	return nil
}

type fakeIdentityResolver struct {
	currentUserFunc func(ctx context.Context, sessionID string) (*model.User, error)
}

func (f *fakeIdentityResolver) CurrentUser(ctx context.Context, sessionID string) (*model.User, error) {
	if f.currentUserFunc != nil {
		return f.currentUserFunc(ctx, sessionID)
	}
	return nil, nil
}

type fakeHealthChecker struct {
	err error
}

func (f *fakeHealthChecker) PingContext(ctx context.Context) error {
	return f.err
}

type fakeAnalysisMetrics struct {
	sentiments []string
}

func (f *fakeAnalysisMetrics) RecordSentimentAnalysis(sentiment string) {
	f.sentiments = append(f.sentiments, sentiment)
}
