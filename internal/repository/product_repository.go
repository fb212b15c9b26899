package repository

import (
	"context"
	"errors"

	"github.com/Wasif581-create/Jdbanks/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

type ProductRepository interface {
	// 新着順（created_at desc）で全件
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id string) error
}
