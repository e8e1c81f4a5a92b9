package auth

import (
	"context"
	"errors"

	"github.com/noah-isme/toko-checkout/internal/db/gen"
)

type stubStore struct{}

func (stubStore) Read(context.Context, func(gen.Querier) error) error {
	return errors.New("stub store")
}

func (stubStore) InTx(context.Context, func(gen.Querier) error) error {
	return errors.New("stub store")
}
