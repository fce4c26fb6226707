// Package catalog は車カタログの参照ロジックを提供する。
package catalog

import (
	"context"
	"fmt"

	"github.com/hitoshi/bestcars/internal/repository"
)

// Service は車カタログの参照ロジックを提供する。
type Service struct {
	cars repository.CarRepository
}

// NewService はServiceを生成する。
func NewService(cars repository.CarRepository) *Service {
	return &Service{cars: cars}
}

// ListCars は全車モデルをメーカー名付きで返す。
func (s *Service) ListCars(ctx context.Context) ([]repository.CarModelWithMake, error) {
	models, err := s.cars.ListModelsWithMake(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return models, nil
}
