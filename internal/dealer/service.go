// Package dealer は販売店の参照系ビジネスロジックを提供する。
package dealer

import (
	"context"
	"fmt"

	"github.com/hitoshi/bestcars/internal/model"
	"github.com/hitoshi/bestcars/internal/repository"
)

// allStates はフィルタなしを意味する州名。旧APIとの互換のため
// パスパラメータ "All" もフィルタなしとして扱う。
const allStates = "All"

// Service は販売店の参照ロジックを提供する。
type Service struct {
	dealers repository.DealerRepository
}

// NewService はServiceを生成する。
func NewService(dealers repository.DealerRepository) *Service {
	return &Service{dealers: dealers}
}

// ListDealers は販売店一覧を返す。
// stateが空または"All"の場合は全件、それ以外は大文字小文字を無視した
// 州名の完全一致でフィルタする。
func (s *Service) ListDealers(ctx context.Context, state string) ([]model.Dealer, error) {
	if state == "" || state == allStates {
		dealers, err := s.dealers.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list dealers: %w", err)
		}
		return dealers, nil
	}

	dealers, err := s.dealers.ListByState(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("failed to list dealers by state: %w", err)
	}
	return dealers, nil
}

// GetDealer は指定IDの販売店を返す。見つからない場合は(nil, nil)を返す。
func (s *Service) GetDealer(ctx context.Context, id int64) (*model.Dealer, error) {
	dealer, err := s.dealers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get dealer: %w", err)
	}
	return dealer, nil
}
