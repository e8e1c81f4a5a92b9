// Package catalog serves products and categories. Prices read here are the
// live prices; carts and checkout read them again inside their own
// transactions.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
	"github.com/noah-isme/toko-checkout/internal/money"
)

const (
	CodeProductNotFound  = "PRODUCT_NOT_FOUND"
	CodeCategoryNotFound = "CATEGORY_NOT_FOUND"
)

// Product is the public product payload.
type Product struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Price       money.Amount `json:"price"`
	CategoryID  *int64       `json:"categoryId"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Category is the public category payload.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListParams captures filters for product listing. Search matches product
// names case-insensitively as a substring.
type ListParams struct {
	CategoryID *int64
	Search     string
	Page       int
	Limit      int
}

// ProductList contains one page of products and pagination metadata.
type ProductList struct {
	Items      []Product         `json:"items"`
	Pagination common.Pagination `json:"pagination"`
}

// Service reads the catalog, caching responses when a Cache is configured.
type Service struct {
	store        db.Store
	cache        *Cache
	logger       zerolog.Logger
	defaultLimit int
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Store        db.Store
	Cache        *Cache
	Logger       zerolog.Logger
	DefaultLimit int
}

// NewService constructs a Service instance.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil {
		return nil, errors.New("catalog: store is required")
	}
	limit := cfg.DefaultLimit
	if limit < 1 {
		limit = 20
	}
	if limit > common.MaxPerPage {
		limit = common.MaxPerPage
	}
	return &Service{store: cfg.Store, cache: cfg.Cache, logger: cfg.Logger, defaultLimit: limit}, nil
}

// ParseListParams reads page, limit, search and categoryId from the query
// string.
func (s *Service) ParseListParams(r *http.Request) (ListParams, error) {
	page, limit := common.ParsePagination(r, s.defaultLimit)
	params := ListParams{Page: page, Limit: limit, Search: strings.TrimSpace(r.URL.Query().Get("search"))}
	if v := strings.TrimSpace(r.URL.Query().Get("categoryId")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id < 1 {
			return params, common.BadRequest("BAD_REQUEST", "categoryId must be a positive integer")
		}
		params.CategoryID = &id
	}
	return params, nil
}

// List returns one page of products ordered by id.
func (s *Service) List(ctx context.Context, params ListParams) (ProductList, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = s.defaultLimit
	}
	key := listKey(params)
	var out ProductList
	if s.cached(ctx, key, &out) {
		return out, nil
	}

	category := pgtype.Int8{}
	if params.CategoryID != nil {
		category = pgtype.Int8{Int64: *params.CategoryID, Valid: true}
	}
	name := common.Text(strings.TrimSpace(params.Search))
	err := s.store.Read(ctx, func(q gen.Querier) error {
		total, err := q.CountProducts(ctx, gen.CountProductsParams{CategoryID: category, Name: name})
		if err != nil {
			return fmt.Errorf("count products: %w", err)
		}
		rows, err := q.ListProducts(ctx, gen.ListProductsParams{
			CategoryID: category,
			Name:       name,
			PageLimit:  int32(params.Limit),
			PageOffset: common.Offset(params.Page, params.Limit),
		})
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		items := make([]Product, 0, len(rows))
		for _, row := range rows {
			items = append(items, toProduct(row))
		}
		out = ProductList{Items: items, Pagination: common.NewPagination(params.Page, params.Limit, total)}
		return nil
	})
	if err != nil {
		return ProductList{}, err
	}
	s.remember(ctx, key, out)
	return out, nil
}

// Get returns one product.
func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	key := "catalog:product:" + strconv.FormatInt(id, 10)
	var out Product
	if s.cached(ctx, key, &out) {
		return out, nil
	}
	err := s.store.Read(ctx, func(q gen.Querier) error {
		row, err := q.GetProductByID(ctx, id)
		if db.IsNotFound(err) {
			return common.NotFound(CodeProductNotFound, "Product not found")
		}
		if err != nil {
			return fmt.Errorf("get product: %w", err)
		}
		out = toProduct(row)
		return nil
	})
	if err != nil {
		return Product{}, err
	}
	s.remember(ctx, key, out)
	return out, nil
}

// Categories returns the categories ordered by name. A non-blank search
// keeps only names containing it, ignoring case.
func (s *Service) Categories(ctx context.Context, search string) ([]Category, error) {
	search = strings.TrimSpace(search)
	key := "catalog:categories"
	if search != "" {
		key += ":" + strconv.Quote(strings.ToLower(search))
	}
	var out []Category
	if s.cached(ctx, key, &out) {
		return out, nil
	}
	err := s.store.Read(ctx, func(q gen.Querier) error {
		var (
			rows []gen.Category
			err  error
		)
		if search == "" {
			rows, err = q.ListCategories(ctx)
		} else {
			rows, err = q.SearchCategories(ctx, search)
		}
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		out = make([]Category, 0, len(rows))
		for _, row := range rows {
			out = append(out, Category{ID: row.ID, Name: row.Name})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.remember(ctx, key, out)
	return out, nil
}

// Category returns one category.
func (s *Service) Category(ctx context.Context, id int64) (Category, error) {
	key := "catalog:category:" + strconv.FormatInt(id, 10)
	var out Category
	if s.cached(ctx, key, &out) {
		return out, nil
	}
	err := s.store.Read(ctx, func(q gen.Querier) error {
		row, err := q.GetCategoryByID(ctx, id)
		if db.IsNotFound(err) {
			return ErrCategoryNotFound()
		}
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		out = Category{ID: row.ID, Name: row.Name}
		return nil
	})
	if err != nil {
		return Category{}, err
	}
	s.remember(ctx, key, out)
	return out, nil
}

// ErrCategoryNotFound reports an unknown category id.
func ErrCategoryNotFound() *common.AppError {
	return common.NotFound(CodeCategoryNotFound, "Category not found")
}

func (s *Service) cached(ctx context.Context, key string, dst any) bool {
	hit, err := s.cache.Load(ctx, key, dst)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
		return false
	}
	return hit
}

func (s *Service) remember(ctx context.Context, key string, v any) {
	if err := s.cache.Store(ctx, key, v); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
}

func listKey(p ListParams) string {
	category := "all"
	if p.CategoryID != nil {
		category = strconv.FormatInt(*p.CategoryID, 10)
	}
	key := fmt.Sprintf("catalog:products:%s:%d:%d", category, p.Page, p.Limit)
	if search := strings.TrimSpace(p.Search); search != "" {
		key += ":" + strconv.Quote(strings.ToLower(search))
	}
	return key
}

func toProduct(row gen.Product) Product {
	return Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: common.TextValue(row.Description),
		Price:       money.NewAmount(money.Round2(row.Price)),
		CategoryID:  common.Int8Ptr(row.CategoryID),
		CreatedAt:   common.Time(row.CreatedAt),
	}
}
