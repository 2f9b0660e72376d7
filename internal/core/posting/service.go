package posting

import (
	"context"
	"fmt"
	"log/slog"
)

// Repository は求人データの読み取りインターフェース
type Repository interface {
	// Search は条件に一致する求人を掲載日の降順で返す
	Search(ctx context.Context, criteria SearchCriteria) ([]*JobPosting, error)

	// FilterOptions は絞り込みコントロール用の選択肢を求人全件から算出して返す
	FilterOptions(ctx context.Context) (*FilterOptions, error)
}

// Service は求人検索のビジネスロジックを提供する
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// ServiceOption はService構築時のオプション
type ServiceOption func(*Service)

// WithLogger はロガーを差し替える
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService は新しいServiceを作成する
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:   repo,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search は条件に一致する求人と絞り込み選択肢を返す。
// 一致する求人が無い場合は空の結果を返し、エラーにはしない。
// 選択肢は現在の検索条件に関わらず常に求人全件から算出する。
func (s *Service) Search(ctx context.Context, criteria SearchCriteria) (*SearchResult, error) {
	postings, err := s.repo.Search(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to search postings: %w", err)
	}

	options, err := s.repo.FilterOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load filter options: %w", err)
	}

	s.logger.Info("求人検索を実行",
		slog.Int("hits", len(postings)),
		slog.Bool("keyword", criteria.HasKeyword()),
	)

	return &SearchResult{
		Postings: postings,
		Options:  options,
	}, nil
}
