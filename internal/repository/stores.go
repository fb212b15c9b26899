package repository

import (
	"context"

	"github.com/Wasif581-create/Jdbanks/internal/domain/model"
)

// ローカル永続化。キーはクライアントごとの不透明な文字列。
// 実装は壊れた・無いデータをゼロ値として読み、エラーにしない。

type CartStore interface {
	Load(ctx context.Context, key string) (model.Cart, error)
	Save(ctx context.Context, key string, cart model.Cart) error
}

type CustomerStore interface {
	Load(ctx context.Context, key string) (model.CustomerDetails, error)
	Save(ctx context.Context, key string, details model.CustomerDetails) error
}
