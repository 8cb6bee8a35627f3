package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/wadoud17/maktabati-pos/internal/domain/entity"
	"github.com/wadoud17/maktabati-pos/internal/infrastructure/api"
)

// CatalogService composes the read-only product and client views from the
// remote accessor's data.
type CatalogService struct {
	products      *api.Resource[[]entity.Product]
	clients       *api.Resource[[]entity.Customer]
	createProduct *api.Mutation[entity.Product]
}

// NewCatalogService creates the catalog views over the given client.
func NewCatalogService(client *api.Client) *CatalogService {
	return &CatalogService{
		products:      api.NewResource[[]entity.Product](client, "/api/produits"),
		clients:       api.NewResource[[]entity.Customer](client, "/api/clients"),
		createProduct: api.NewMutation[entity.Product](client, http.MethodPost, "/api/produits"),
	}
}

// Products fetches the product list.
func (s *CatalogService) Products(ctx context.Context) ([]entity.Product, error) {
	data, err := s.products.Refetch(ctx)
	if err != nil {
		return nil, err
	}
	return *data, nil
}

// ProductsState exposes the underlying resource state for the screen.
func (s *CatalogService) ProductsState() (*[]entity.Product, bool, error) {
	return s.products.State()
}

// Clients fetches the client list.
func (s *CatalogService) Clients(ctx context.Context) ([]entity.Customer, error) {
	data, err := s.clients.Refetch(ctx)
	if err != nil {
		return nil, err
	}
	return *data, nil
}

// CreateProduct submits a new product to the backend. The failure, if any,
// is the caller's to handle; the cached product list is not touched.
func (s *CatalogService) CreateProduct(ctx context.Context, p entity.Product) (*entity.Product, error) {
	return s.createProduct.Do(ctx, p)
}

// Search filters products by name or reference (case-insensitive) or by
// barcode substring, the way the product and checkout screens filter their
// grids.
func Search(products []entity.Product, term string) []entity.Product {
	if term == "" {
		return products
	}
	lower := strings.ToLower(term)
	var out []entity.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), lower) ||
			strings.Contains(strings.ToLower(p.Reference), lower) ||
			strings.Contains(p.Barcode, term) {
			out = append(out, p)
		}
	}
	return out
}

// FindCustomer returns the client with the given id, or nil.
func FindCustomer(clients []entity.Customer, id int) *entity.Customer {
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i]
		}
	}
	return nil
}
