// Package memdb is an in-memory implementation of the generated Querier and
// of db.Store, used by service tests. Transactions run against a copy of the
// data that replaces the committed state only when the callback succeeds.
package memdb

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/toko-checkout/internal/db/gen"
)

// DB holds the committed state. All access is serialized by one mutex, so
// InTx behaves like a serializable transaction.
type DB struct {
	mu     sync.Mutex
	st     *state
	failOn map[string]error

	// Now stamps created_at columns. Defaults to time.Now.
	Now func() time.Time
}

// New returns an empty database.
func New() *DB {
	return &DB{st: newState(), failOn: map[string]error{}}
}

// FailOn makes every later call of the named query return err. A nil err
// clears the failure.
func (d *DB) FailOn(query string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err == nil {
		delete(d.failOn, query)
		return
	}
	d.failOn[query] = err
}

// Read runs fn against the committed state.
func (d *DB) Read(_ context.Context, fn func(q gen.Querier) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return fn(&view{db: d, st: d.st})
}

// InTx runs fn against a private copy and commits it when fn returns nil.
func (d *DB) InTx(_ context.Context, fn func(q gen.Querier) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	work := d.st.clone()
	if err := fn(&view{db: d, st: work}); err != nil {
		return err
	}
	d.st = work
	return nil
}

func (d *DB) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

type state struct {
	seq        map[string]int64
	users      map[[16]byte]gen.User
	categories map[int64]gen.Category
	products   map[int64]gen.Product
	cart       map[int64]gen.CartItem
	addresses  map[int64]gen.UserAddress
	payments   map[int64]gen.UserPaymentMethod
	orders     map[int64]gen.Order
	orderItems map[int64]gen.OrderItem
	events     map[int64]gen.DomainEvent
}

func newState() *state {
	return &state{
		seq:        map[string]int64{},
		users:      map[[16]byte]gen.User{},
		categories: map[int64]gen.Category{},
		products:   map[int64]gen.Product{},
		cart:       map[int64]gen.CartItem{},
		addresses:  map[int64]gen.UserAddress{},
		payments:   map[int64]gen.UserPaymentMethod{},
		orders:     map[int64]gen.Order{},
		orderItems: map[int64]gen.OrderItem{},
		events:     map[int64]gen.DomainEvent{},
	}
}

func (s *state) clone() *state {
	return &state{
		seq:        maps.Clone(s.seq),
		users:      maps.Clone(s.users),
		categories: maps.Clone(s.categories),
		products:   maps.Clone(s.products),
		cart:       maps.Clone(s.cart),
		addresses:  maps.Clone(s.addresses),
		payments:   maps.Clone(s.payments),
		orders:     maps.Clone(s.orders),
		orderItems: maps.Clone(s.orderItems),
		events:     maps.Clone(s.events),
	}
}

func (s *state) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func pgErr(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint, Message: "memdb: " + constraint}
}

func sortedByID[T any](m map[int64]T) []T {
	ids := slices.Sorted(maps.Keys(m))
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

// newestFirst orders rows by created_at DESC, id DESC.
func newestFirst[T any](rows []T, created func(T) time.Time, id func(T) int64) {
	slices.SortStableFunc(rows, func(a, b T) int {
		if c := created(b).Compare(created(a)); c != 0 {
			return c
		}
		switch {
		case id(a) > id(b):
			return -1
		case id(a) < id(b):
			return 1
		}
		return 0
	})
}

type view struct {
	db *DB
	st *state
}

var _ gen.Querier = (*view)(nil)

func (v *view) fail(query string) error {
	return v.db.failOn[query]
}

func (v *view) stamp() pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: v.db.now(), Valid: true}
}

// users

func (v *view) CreateUser(_ context.Context, arg gen.CreateUserParams) (gen.User, error) {
	if err := v.fail("CreateUser"); err != nil {
		return gen.User{}, err
	}
	for _, u := range v.st.users {
		if strings.EqualFold(u.Email, arg.Email) {
			return gen.User{}, pgErr("23505", "users_email_lower_key")
		}
	}
	id := uuid.New()
	u := gen.User{
		ID:           pgtype.UUID{Bytes: id, Valid: true},
		Name:         arg.Name,
		Email:        arg.Email,
		PasswordHash: arg.PasswordHash,
		CreatedAt:    v.stamp(),
		UpdatedAt:    v.stamp(),
	}
	v.st.users[id] = u
	return u, nil
}

func (v *view) GetUserByEmail(_ context.Context, email string) (gen.User, error) {
	if err := v.fail("GetUserByEmail"); err != nil {
		return gen.User{}, err
	}
	for _, u := range v.st.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return gen.User{}, pgx.ErrNoRows
}

func (v *view) GetUserByID(_ context.Context, id pgtype.UUID) (gen.User, error) {
	if err := v.fail("GetUserByID"); err != nil {
		return gen.User{}, err
	}
	u, ok := v.st.users[id.Bytes]
	if !ok || !id.Valid {
		return gen.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (v *view) LockUserForUpdate(ctx context.Context, id pgtype.UUID) (gen.User, error) {
	if err := v.fail("LockUserForUpdate"); err != nil {
		return gen.User{}, err
	}
	return v.GetUserByID(ctx, id)
}

func (v *view) UpdateUserAccount(_ context.Context, arg gen.UpdateUserAccountParams) (gen.User, error) {
	if err := v.fail("UpdateUserAccount"); err != nil {
		return gen.User{}, err
	}
	u, ok := v.st.users[arg.ID.Bytes]
	if !ok || !arg.ID.Valid {
		return gen.User{}, pgx.ErrNoRows
	}
	for id, other := range v.st.users {
		if id != arg.ID.Bytes && strings.EqualFold(other.Email, arg.Email) {
			return gen.User{}, pgErr("23505", "users_email_lower_key")
		}
	}
	u.Name = arg.Name
	u.Email = arg.Email
	u.UpdatedAt = v.stamp()
	v.st.users[arg.ID.Bytes] = u
	return u, nil
}

func (v *view) UpdateUserPassword(_ context.Context, arg gen.UpdateUserPasswordParams) error {
	if err := v.fail("UpdateUserPassword"); err != nil {
		return err
	}
	u, ok := v.st.users[arg.ID.Bytes]
	if !ok || !arg.ID.Valid {
		return nil
	}
	u.PasswordHash = arg.PasswordHash
	u.UpdatedAt = v.stamp()
	v.st.users[arg.ID.Bytes] = u
	return nil
}

// DeleteUser cascades to the rows that reference the user, like the
// ON DELETE CASCADE foreign keys do.
func (v *view) DeleteUser(_ context.Context, id pgtype.UUID) error {
	if err := v.fail("DeleteUser"); err != nil {
		return err
	}
	delete(v.st.users, id.Bytes)
	maps.DeleteFunc(v.st.cart, func(_ int64, c gen.CartItem) bool { return c.UserID == id })
	maps.DeleteFunc(v.st.addresses, func(_ int64, a gen.UserAddress) bool { return a.UserID == id })
	maps.DeleteFunc(v.st.payments, func(_ int64, p gen.UserPaymentMethod) bool { return p.UserID == id })
	maps.DeleteFunc(v.st.orders, func(_ int64, o gen.Order) bool { return o.UserID == id })
	maps.DeleteFunc(v.st.orderItems, func(_ int64, it gen.OrderItem) bool {
		_, ok := v.st.orders[it.OrderID]
		return !ok
	})
	return nil
}

// catalog

func (v *view) CreateCategory(_ context.Context, name string) (gen.Category, error) {
	if err := v.fail("CreateCategory"); err != nil {
		return gen.Category{}, err
	}
	for _, c := range v.st.categories {
		if c.Name == name {
			return gen.Category{}, pgErr("23505", "categories_name_key")
		}
	}
	c := gen.Category{ID: v.st.next("categories"), Name: name, CreatedAt: v.stamp()}
	v.st.categories[c.ID] = c
	return c, nil
}

func (v *view) ListCategories(context.Context) ([]gen.Category, error) {
	if err := v.fail("ListCategories"); err != nil {
		return nil, err
	}
	out := sortedByID(v.st.categories)
	slices.SortStableFunc(out, func(a, b gen.Category) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (v *view) GetCategoryByID(_ context.Context, id int64) (gen.Category, error) {
	if err := v.fail("GetCategoryByID"); err != nil {
		return gen.Category{}, err
	}
	c, ok := v.st.categories[id]
	if !ok {
		return gen.Category{}, pgx.ErrNoRows
	}
	return c, nil
}

func (v *view) SearchCategories(ctx context.Context, name string) ([]gen.Category, error) {
	if err := v.fail("SearchCategories"); err != nil {
		return nil, err
	}
	all, err := v.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := []gen.Category{}
	for _, c := range all {
		if containsFold(c.Name, name) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (v *view) CreateProduct(_ context.Context, arg gen.CreateProductParams) (gen.Product, error) {
	if err := v.fail("CreateProduct"); err != nil {
		return gen.Product{}, err
	}
	if arg.CategoryID.Valid {
		if _, ok := v.st.categories[arg.CategoryID.Int64]; !ok {
			return gen.Product{}, pgErr("23503", "products_category_id_fkey")
		}
	}
	if arg.Price.IsNegative() {
		return gen.Product{}, pgErr("23514", "products_price_check")
	}
	p := gen.Product{
		ID:          v.st.next("products"),
		CategoryID:  arg.CategoryID,
		Name:        arg.Name,
		Description: arg.Description,
		Price:       arg.Price.Round(2),
		CreatedAt:   v.stamp(),
	}
	v.st.products[p.ID] = p
	return p, nil
}

func (v *view) GetProductByID(_ context.Context, id int64) (gen.Product, error) {
	if err := v.fail("GetProductByID"); err != nil {
		return gen.Product{}, err
	}
	p, ok := v.st.products[id]
	if !ok {
		return gen.Product{}, pgx.ErrNoRows
	}
	return p, nil
}

func (v *view) GetProductsByIDs(_ context.Context, ids []int64) ([]gen.Product, error) {
	if err := v.fail("GetProductsByIDs"); err != nil {
		return nil, err
	}
	out := []gen.Product{}
	for _, p := range sortedByID(v.st.products) {
		if slices.Contains(ids, p.ID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (v *view) filterProducts(category pgtype.Int8, name pgtype.Text) []gen.Product {
	out := []gen.Product{}
	for _, p := range sortedByID(v.st.products) {
		if category.Valid && (!p.CategoryID.Valid || p.CategoryID.Int64 != category.Int64) {
			continue
		}
		if name.Valid && !containsFold(p.Name, name.String) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (v *view) ListProducts(_ context.Context, arg gen.ListProductsParams) ([]gen.Product, error) {
	if err := v.fail("ListProducts"); err != nil {
		return nil, err
	}
	rows := v.filterProducts(arg.CategoryID, arg.Name)
	start := min(int(arg.PageOffset), len(rows))
	end := min(start+int(arg.PageLimit), len(rows))
	return rows[start:end], nil
}

func (v *view) CountProducts(_ context.Context, arg gen.CountProductsParams) (int64, error) {
	if err := v.fail("CountProducts"); err != nil {
		return 0, err
	}
	return int64(len(v.filterProducts(arg.CategoryID, arg.Name))), nil
}

// cart

func (v *view) ListCartItemsByUser(_ context.Context, userID pgtype.UUID) ([]gen.ListCartItemsByUserRow, error) {
	if err := v.fail("ListCartItemsByUser"); err != nil {
		return nil, err
	}
	out := []gen.ListCartItemsByUserRow{}
	for _, ci := range sortedByID(v.st.cart) {
		if ci.UserID != userID {
			continue
		}
		p, ok := v.st.products[ci.ProductID]
		if !ok {
			continue
		}
		out = append(out, gen.ListCartItemsByUserRow{
			ID:                ci.ID,
			UserID:            ci.UserID,
			ProductID:         ci.ProductID,
			Quantity:          ci.Quantity,
			CreatedAt:         ci.CreatedAt,
			ProductName:       p.Name,
			ProductPrice:      p.Price,
			ProductCategoryID: p.CategoryID,
		})
	}
	return out, nil
}

func (v *view) InsertCartItem(_ context.Context, arg gen.InsertCartItemParams) (gen.CartItem, error) {
	if err := v.fail("InsertCartItem"); err != nil {
		return gen.CartItem{}, err
	}
	if arg.Quantity < 1 {
		return gen.CartItem{}, pgErr("23514", "cart_items_quantity_check")
	}
	if _, ok := v.st.users[arg.UserID.Bytes]; !ok {
		return gen.CartItem{}, pgErr("23503", "cart_items_user_id_fkey")
	}
	if _, ok := v.st.products[arg.ProductID]; !ok {
		return gen.CartItem{}, pgErr("23503", "cart_items_product_id_fkey")
	}
	for _, ci := range v.st.cart {
		if ci.UserID == arg.UserID && ci.ProductID == arg.ProductID {
			return gen.CartItem{}, pgErr("23505", "cart_items_user_product_key")
		}
	}
	ci := gen.CartItem{
		ID:        v.st.next("cart_items"),
		UserID:    arg.UserID,
		ProductID: arg.ProductID,
		Quantity:  arg.Quantity,
		CreatedAt: v.stamp(),
	}
	v.st.cart[ci.ID] = ci
	return ci, nil
}

func (v *view) DeleteCartItemsByUser(_ context.Context, userID pgtype.UUID) error {
	if err := v.fail("DeleteCartItemsByUser"); err != nil {
		return err
	}
	maps.DeleteFunc(v.st.cart, func(_ int64, ci gen.CartItem) bool { return ci.UserID == userID })
	return nil
}

// addresses

func addressCreated(a gen.UserAddress) time.Time { return a.CreatedAt.Time }
func addressID(a gen.UserAddress) int64          { return a.ID }

func (v *view) ListAddressesByUser(_ context.Context, userID pgtype.UUID) ([]gen.UserAddress, error) {
	if err := v.fail("ListAddressesByUser"); err != nil {
		return nil, err
	}
	out := []gen.UserAddress{}
	for _, a := range v.st.addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	newestFirst(out, addressCreated, addressID)
	return out, nil
}

func (v *view) GetAddressByIDAndUser(_ context.Context, arg gen.GetAddressByIDAndUserParams) (gen.UserAddress, error) {
	if err := v.fail("GetAddressByIDAndUser"); err != nil {
		return gen.UserAddress{}, err
	}
	a, ok := v.st.addresses[arg.ID]
	if !ok || a.UserID != arg.UserID {
		return gen.UserAddress{}, pgx.ErrNoRows
	}
	return a, nil
}

func (v *view) CreateAddress(_ context.Context, arg gen.CreateAddressParams) (gen.UserAddress, error) {
	if err := v.fail("CreateAddress"); err != nil {
		return gen.UserAddress{}, err
	}
	if _, ok := v.st.users[arg.UserID.Bytes]; !ok {
		return gen.UserAddress{}, pgErr("23503", "user_addresses_user_id_fkey")
	}
	if arg.IsDefault && v.hasDefaultAddress(arg.UserID, 0) {
		return gen.UserAddress{}, pgErr("23505", "user_addresses_one_default_idx")
	}
	a := gen.UserAddress{
		ID:         v.st.next("user_addresses"),
		UserID:     arg.UserID,
		Label:      arg.Label,
		FullName:   arg.FullName,
		Email:      arg.Email,
		Address:    arg.Address,
		City:       arg.City,
		PostalCode: arg.PostalCode,
		Country:    arg.Country,
		IsDefault:  arg.IsDefault,
		CreatedAt:  v.stamp(),
	}
	v.st.addresses[a.ID] = a
	return a, nil
}

func (v *view) hasDefaultAddress(userID pgtype.UUID, except int64) bool {
	for _, a := range v.st.addresses {
		if a.UserID == userID && a.IsDefault && a.ID != except {
			return true
		}
	}
	return false
}

func (v *view) ClearDefaultAddresses(_ context.Context, userID pgtype.UUID) error {
	if err := v.fail("ClearDefaultAddresses"); err != nil {
		return err
	}
	for id, a := range v.st.addresses {
		if a.UserID == userID && a.IsDefault {
			a.IsDefault = false
			v.st.addresses[id] = a
		}
	}
	return nil
}

func (v *view) MarkAddressDefault(_ context.Context, arg gen.MarkAddressDefaultParams) (gen.UserAddress, error) {
	if err := v.fail("MarkAddressDefault"); err != nil {
		return gen.UserAddress{}, err
	}
	a, ok := v.st.addresses[arg.ID]
	if !ok || a.UserID != arg.UserID {
		return gen.UserAddress{}, pgx.ErrNoRows
	}
	if v.hasDefaultAddress(arg.UserID, arg.ID) {
		return gen.UserAddress{}, pgErr("23505", "user_addresses_one_default_idx")
	}
	a.IsDefault = true
	v.st.addresses[a.ID] = a
	return a, nil
}

func (v *view) DeleteAddress(_ context.Context, arg gen.DeleteAddressParams) error {
	if err := v.fail("DeleteAddress"); err != nil {
		return err
	}
	if a, ok := v.st.addresses[arg.ID]; ok && a.UserID == arg.UserID {
		delete(v.st.addresses, arg.ID)
	}
	return nil
}

// payment methods

func paymentCreated(p gen.UserPaymentMethod) time.Time { return p.CreatedAt.Time }
func paymentID(p gen.UserPaymentMethod) int64          { return p.ID }

func (v *view) ListPaymentMethodsByUser(_ context.Context, userID pgtype.UUID) ([]gen.UserPaymentMethod, error) {
	if err := v.fail("ListPaymentMethodsByUser"); err != nil {
		return nil, err
	}
	out := []gen.UserPaymentMethod{}
	for _, p := range v.st.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	newestFirst(out, paymentCreated, paymentID)
	return out, nil
}

func (v *view) GetPaymentMethodByIDAndUser(_ context.Context, arg gen.GetPaymentMethodByIDAndUserParams) (gen.UserPaymentMethod, error) {
	if err := v.fail("GetPaymentMethodByIDAndUser"); err != nil {
		return gen.UserPaymentMethod{}, err
	}
	p, ok := v.st.payments[arg.ID]
	if !ok || p.UserID != arg.UserID {
		return gen.UserPaymentMethod{}, pgx.ErrNoRows
	}
	return p, nil
}

func (v *view) CreatePaymentMethod(_ context.Context, arg gen.CreatePaymentMethodParams) (gen.UserPaymentMethod, error) {
	if err := v.fail("CreatePaymentMethod"); err != nil {
		return gen.UserPaymentMethod{}, err
	}
	if _, ok := v.st.users[arg.UserID.Bytes]; !ok {
		return gen.UserPaymentMethod{}, pgErr("23503", "user_payment_methods_user_id_fkey")
	}
	card := arg.Method == gen.PaymentMethodKindCard && arg.CardLast4.Valid && arg.CardExpiry.Valid && !arg.PaypalEmail.Valid
	paypal := arg.Method == gen.PaymentMethodKindPaypal && arg.PaypalEmail.Valid && !arg.CardLast4.Valid && !arg.CardExpiry.Valid
	if !card && !paypal {
		return gen.UserPaymentMethod{}, pgErr("23514", "user_payment_methods_shape_chk")
	}
	if arg.IsDefault && v.hasDefaultPayment(arg.UserID, 0) {
		return gen.UserPaymentMethod{}, pgErr("23505", "user_payment_methods_one_default_idx")
	}
	p := gen.UserPaymentMethod{
		ID:          v.st.next("user_payment_methods"),
		UserID:      arg.UserID,
		Label:       arg.Label,
		Method:      arg.Method,
		CardLast4:   arg.CardLast4,
		CardExpiry:  arg.CardExpiry,
		PaypalEmail: arg.PaypalEmail,
		IsDefault:   arg.IsDefault,
		CreatedAt:   v.stamp(),
	}
	v.st.payments[p.ID] = p
	return p, nil
}

func (v *view) hasDefaultPayment(userID pgtype.UUID, except int64) bool {
	for _, p := range v.st.payments {
		if p.UserID == userID && p.IsDefault && p.ID != except {
			return true
		}
	}
	return false
}

func (v *view) ClearDefaultPaymentMethods(_ context.Context, userID pgtype.UUID) error {
	if err := v.fail("ClearDefaultPaymentMethods"); err != nil {
		return err
	}
	for id, p := range v.st.payments {
		if p.UserID == userID && p.IsDefault {
			p.IsDefault = false
			v.st.payments[id] = p
		}
	}
	return nil
}

func (v *view) MarkPaymentMethodDefault(_ context.Context, arg gen.MarkPaymentMethodDefaultParams) (gen.UserPaymentMethod, error) {
	if err := v.fail("MarkPaymentMethodDefault"); err != nil {
		return gen.UserPaymentMethod{}, err
	}
	p, ok := v.st.payments[arg.ID]
	if !ok || p.UserID != arg.UserID {
		return gen.UserPaymentMethod{}, pgx.ErrNoRows
	}
	if v.hasDefaultPayment(arg.UserID, arg.ID) {
		return gen.UserPaymentMethod{}, pgErr("23505", "user_payment_methods_one_default_idx")
	}
	p.IsDefault = true
	v.st.payments[p.ID] = p
	return p, nil
}

func (v *view) DeletePaymentMethod(_ context.Context, arg gen.DeletePaymentMethodParams) error {
	if err := v.fail("DeletePaymentMethod"); err != nil {
		return err
	}
	if p, ok := v.st.payments[arg.ID]; ok && p.UserID == arg.UserID {
		delete(v.st.payments, arg.ID)
	}
	return nil
}

// orders

func (v *view) CreateOrder(_ context.Context, arg gen.CreateOrderParams) (gen.Order, error) {
	if err := v.fail("CreateOrder"); err != nil {
		return gen.Order{}, err
	}
	if _, ok := v.st.users[arg.UserID.Bytes]; !ok {
		return gen.Order{}, pgErr("23503", "orders_user_id_fkey")
	}
	o := gen.Order{
		ID:                 v.st.next("orders"),
		UserID:             arg.UserID,
		Status:             arg.Status,
		Currency:           arg.Currency,
		Subtotal:           arg.Subtotal.Round(2),
		ShippingFullName:   arg.ShippingFullName,
		ShippingEmail:      arg.ShippingEmail,
		ShippingAddress:    arg.ShippingAddress,
		ShippingCity:       arg.ShippingCity,
		ShippingPostalCode: arg.ShippingPostalCode,
		ShippingCountry:    arg.ShippingCountry,
		PaymentMethod:      arg.PaymentMethod,
		PaymentCardLast4:   arg.PaymentCardLast4,
		PaymentCardExpiry:  arg.PaymentCardExpiry,
		PaymentPaypalEmail: arg.PaymentPaypalEmail,
		CreatedAt:          v.stamp(),
	}
	v.st.orders[o.ID] = o
	return o, nil
}

func (v *view) CreateOrderItem(_ context.Context, arg gen.CreateOrderItemParams) (gen.OrderItem, error) {
	if err := v.fail("CreateOrderItem"); err != nil {
		return gen.OrderItem{}, err
	}
	if _, ok := v.st.orders[arg.OrderID]; !ok {
		return gen.OrderItem{}, pgErr("23503", "order_items_order_id_fkey")
	}
	if _, ok := v.st.products[arg.ProductID]; !ok {
		return gen.OrderItem{}, pgErr("23503", "order_items_product_id_fkey")
	}
	if arg.Quantity < 1 {
		return gen.OrderItem{}, pgErr("23514", "order_items_quantity_check")
	}
	it := gen.OrderItem{
		ID:          v.st.next("order_items"),
		OrderID:     arg.OrderID,
		ProductID:   arg.ProductID,
		ProductName: arg.ProductName,
		UnitPrice:   arg.UnitPrice.Round(2),
		Quantity:    arg.Quantity,
		LineTotal:   arg.LineTotal.Round(2),
	}
	v.st.orderItems[it.ID] = it
	return it, nil
}

func (v *view) ListOrdersByUser(_ context.Context, userID pgtype.UUID) ([]gen.Order, error) {
	if err := v.fail("ListOrdersByUser"); err != nil {
		return nil, err
	}
	out := []gen.Order{}
	for _, o := range v.st.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	newestFirst(out, func(o gen.Order) time.Time { return o.CreatedAt.Time }, func(o gen.Order) int64 { return o.ID })
	return out, nil
}

func (v *view) GetOrderByIDAndUser(_ context.Context, arg gen.GetOrderByIDAndUserParams) (gen.Order, error) {
	if err := v.fail("GetOrderByIDAndUser"); err != nil {
		return gen.Order{}, err
	}
	o, ok := v.st.orders[arg.ID]
	if !ok || o.UserID != arg.UserID {
		return gen.Order{}, pgx.ErrNoRows
	}
	return o, nil
}

func (v *view) ListOrderItemsByOrderIDs(_ context.Context, orderIDs []int64) ([]gen.OrderItem, error) {
	if err := v.fail("ListOrderItemsByOrderIDs"); err != nil {
		return nil, err
	}
	out := []gen.OrderItem{}
	for _, it := range sortedByID(v.st.orderItems) {
		if slices.Contains(orderIDs, it.OrderID) {
			out = append(out, it)
		}
	}
	slices.SortStableFunc(out, func(a, b gen.OrderItem) int {
		switch {
		case a.OrderID < b.OrderID:
			return -1
		case a.OrderID > b.OrderID:
			return 1
		}
		return 0
	})
	return out, nil
}

// events

func (v *view) InsertDomainEvent(_ context.Context, arg gen.InsertDomainEventParams) (gen.DomainEvent, error) {
	if err := v.fail("InsertDomainEvent"); err != nil {
		return gen.DomainEvent{}, err
	}
	ev := gen.DomainEvent{
		ID:          v.st.next("domain_events"),
		Topic:       arg.Topic,
		AggregateID: arg.AggregateID,
		Payload:     slices.Clone(arg.Payload),
		OccurredAt:  v.stamp(),
	}
	v.st.events[ev.ID] = ev
	return ev, nil
}

func (v *view) ListDomainEventsByTopic(_ context.Context, arg gen.ListDomainEventsByTopicParams) ([]gen.DomainEvent, error) {
	if err := v.fail("ListDomainEventsByTopic"); err != nil {
		return nil, err
	}
	out := []gen.DomainEvent{}
	for _, ev := range sortedByID(v.st.events) {
		if ev.Topic != arg.Topic {
			continue
		}
		if arg.Limit > 0 && len(out) >= int(arg.Limit) {
			break
		}
		out = append(out, ev)
	}
	return out, nil
}

// MustPrice parses a decimal literal for test fixtures.
func MustPrice(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
