// Package seed loads a small demo catalog and account into an empty store.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/toko-checkout/internal/auth"
	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
)

type product struct {
	name        string
	description string
	price       string
}

var catalog = map[string][]product{
	"Kitchen": {
		{"Ceramic Mug", "350ml stoneware mug", "12.50"},
		{"Pour-over Kettle", "Gooseneck kettle, 1l", "39.90"},
	},
	"Apparel": {
		{"Logo T-Shirt", "Organic cotton, unisex fit", "19.99"},
		{"Wool Beanie", "Merino blend", "24.00"},
	},
	"Stationery": {
		{"Dotted Notebook", "A5, 160 pages", "9.75"},
		{"Brass Pen", "Refillable ballpoint", "32.00"},
	},
}

// categoryOrder keeps the seeded ids stable between runs.
var categoryOrder = []string{"Kitchen", "Apparel", "Stationery"}

// Demo is the account created by Run.
type Demo struct {
	Name     string
	Email    string
	Password string
}

// Result reports what Run inserted.
type Result struct {
	Categories int
	Products   int
	UserID     string
}

// Run inserts the demo catalog unless products already exist, then registers
// the demo account unless its email is taken.
func Run(ctx context.Context, store db.Store, accounts *auth.Service, demo Demo) (Result, error) {
	var res Result
	err := store.InTx(ctx, func(q gen.Querier) error {
		res = Result{}
		n, err := q.CountProducts(ctx, gen.CountProductsParams{})
		if err != nil {
			return fmt.Errorf("count products: %w", err)
		}
		if n > 0 {
			return nil
		}
		for _, name := range categoryOrder {
			cat, err := q.CreateCategory(ctx, name)
			if err != nil {
				return fmt.Errorf("create category %s: %w", name, err)
			}
			res.Categories++
			for _, p := range catalog[name] {
				if _, err := q.CreateProduct(ctx, gen.CreateProductParams{
					CategoryID:  pgtype.Int8{Int64: cat.ID, Valid: true},
					Name:        p.name,
					Description: common.Text(p.description),
					Price:       decimal.RequireFromString(p.price),
				}); err != nil {
					return fmt.Errorf("create product %s: %w", p.name, err)
				}
				res.Products++
			}
		}
		return nil
	})
	if err != nil {
		return res, err
	}

	if accounts == nil || demo.Email == "" {
		return res, nil
	}
	u, err := accounts.Register(ctx, demo.Name, demo.Email, demo.Password)
	switch {
	case common.HasCode(err, auth.CodeEmailAlreadyUsed):
		return res, nil
	case err != nil:
		return res, fmt.Errorf("register demo user: %w", err)
	}
	res.UserID = u.ID
	return res, nil
}
