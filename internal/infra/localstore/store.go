package localstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/Wasif581-create/Jdbanks/internal/domain/model"
)

// ファイルベースのキー付きレコード保存。
// キーごとに1つのJSONファイル。壊れた・無いファイルはゼロ値として読む。
type store struct {
	dir    string
	prefix string
}

func (s *store) path(key string) string {
	return filepath.Join(s.dir, s.prefix+sanitizeKey(key)+".json")
}

// ファイル名に使える文字だけ残す
func sanitizeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// 読み込み。無い・壊れている場合はfalseを返し、vには触れない。
func (s *store) read(key string, v any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// 一時ファイルに書いてからrenameする
func (s *store) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, s.prefix+"*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	return os.Rename(name, s.path(key))
}

type CartStore struct {
	s store
}

func NewCartStore(dir string) (*CartStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &CartStore{s: store{dir: dir, prefix: "cart_"}}, nil
}

func (c *CartStore) Load(_ context.Context, key string) (model.Cart, error) {
	var cart model.Cart
	if !c.s.read(key, &cart) {
		return model.Cart{}, nil
	}
	if cart == nil {
		cart = model.Cart{}
	}
	return cart, nil
}

func (c *CartStore) Save(_ context.Context, key string, cart model.Cart) error {
	if cart == nil {
		cart = model.Cart{}
	}
	return c.s.write(key, cart)
}

type CustomerStore struct {
	s store
}

func NewCustomerStore(dir string) (*CustomerStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &CustomerStore{s: store{dir: dir, prefix: "cust_"}}, nil
}

func (c *CustomerStore) Load(_ context.Context, key string) (model.CustomerDetails, error) {
	var details model.CustomerDetails
	if !c.s.read(key, &details) {
		return model.CustomerDetails{}, nil
	}
	return details, nil
}

func (c *CustomerStore) Save(_ context.Context, key string, details model.CustomerDetails) error {
	return c.s.write(key, details)
}
