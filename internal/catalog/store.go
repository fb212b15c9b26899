package catalog

import (
	"context"
	"sync"

	"github.com/Wasif581-create/Jdbanks/internal/domain/model"
	"github.com/Wasif581-create/Jdbanks/internal/repository"

	"go.uber.org/zap"
)

// Store はカタログ全体のスナップショットを持つ。
// 置き換えは全量単位で、読み手は古い全量か新しい全量のどちらかだけを見る。
// 購読者は購読時と置き換えのたびに完全なスナップショットを受け取る。
type Store struct {
	repo   repository.ProductRepository
	logger *zap.Logger

	mu       sync.RWMutex
	products []model.Product
	subs     []func([]model.Product)
}

func NewStore(repo repository.ProductRepository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{repo: repo, logger: logger}
}

// Refresh はDBから全件を読み直してスナップショットを置き換える。
// 管理側の書き込み後と起動時に呼ぶ。
func (s *Store) Refresh(ctx context.Context) error {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("catalog refresh failed", zap.Error(err))
		return err
	}
	s.Replace(products)
	return nil
}

// Replace はスナップショットを差し替えて購読者に通知する。
func (s *Store) Replace(products []model.Product) {
	if products == nil {
		products = []model.Product{}
	}

	s.mu.Lock()
	s.products = products
	subs := make([]func([]model.Product), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	s.logger.Info("catalog snapshot replaced", zap.Int("products", len(products)))
	for _, fn := range subs {
		fn(products)
	}
}

// Snapshot は現在の全量のコピーを返す。
func (s *Store) Snapshot() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Find はIDで1件引く。
func (s *Store) Find(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// Subscribe は購読を登録し、現在のスナップショットを即時に1回渡す。
func (s *Store) Subscribe(fn func([]model.Product)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	current := s.products
	s.mu.Unlock()

	fn(current)
}
