package memdb

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/toko-checkout/internal/db/gen"
)

// SeedUser inserts a user and returns it. It panics on failure.
func (d *DB) SeedUser(name, email string) gen.User {
	var u gen.User
	must(d.InTx(context.Background(), func(q gen.Querier) error {
		var err error
		u, err = q.CreateUser(context.Background(), gen.CreateUserParams{Name: name, Email: email, PasswordHash: "x"})
		return err
	}))
	return u
}

// SeedProduct inserts an uncategorized product priced at price.
func (d *DB) SeedProduct(name, price string) gen.Product {
	var p gen.Product
	must(d.InTx(context.Background(), func(q gen.Querier) error {
		var err error
		p, err = q.CreateProduct(context.Background(), gen.CreateProductParams{Name: name, Price: MustPrice(price)})
		return err
	}))
	return p
}

// SetPrice changes the live price of a product.
func (d *DB) SetPrice(productID int64, price string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p := d.st.products[productID]
	p.Price = MustPrice(price)
	d.st.products[productID] = p
}

// DeleteProduct removes a product without touching cart lines that point at it.
func (d *DB) DeleteProduct(productID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.st.products, productID)
}

// DisableUser marks the user as disabled.
func (d *DB) DisableUser(id pgtype.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	u := d.st.users[id.Bytes]
	u.DisabledAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	d.st.users[id.Bytes] = u
}

// CartLines returns the committed cart rows of a user keyed by product id.
func (d *DB) CartLines(userID pgtype.UUID) map[int64]int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := map[int64]int32{}
	for _, ci := range d.st.cart {
		if ci.UserID == userID {
			out[ci.ProductID] = ci.Quantity
		}
	}
	return out
}

// Orders returns every committed order ordered by id.
func (d *DB) Orders() []gen.Order {
	d.mu.Lock()
	defer d.mu.Unlock()
	return sortedByID(d.st.orders)
}

// OrderItems returns every committed order line ordered by id.
func (d *DB) OrderItems() []gen.OrderItem {
	d.mu.Lock()
	defer d.mu.Unlock()
	return sortedByID(d.st.orderItems)
}

// Events returns every committed domain event ordered by id.
func (d *DB) Events() []gen.DomainEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	return sortedByID(d.st.events)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
