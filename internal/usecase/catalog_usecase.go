package usecase

import (
	"context"
	"net/http"
	"strings"

	"bengkel/internal/domain/model"
	repo "bengkel/internal/repository"
)

// Katalog sparepart + jasa servis.
type CatalogUsecase struct {
	products repo.ProductRepository
	services repo.ServiceRepository
}

func NewCatalogUsecase(products repo.ProductRepository, services repo.ServiceRepository) *CatalogUsecase {
	return &CatalogUsecase{products: products, services: services}
}

type ProductInput struct {
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	PurchasePrice int64  `json:"purchase_price"`
	Stock         int64  `json:"stock"`
}

type ServiceInput struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	items, err := u.products.List(ctx)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *CatalogUsecase) CreateProduct(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	p, err := u.products.Create(ctx, model.Product{
		Name:          strings.TrimSpace(in.Name),
		Price:         in.Price,
		PurchasePrice: in.PurchasePrice,
		Stock:         in.Stock,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *CatalogUsecase) UpdateProduct(ctx context.Context, id int64, in ProductInput) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	err := u.products.Update(ctx, model.Product{
		ID:            id,
		Name:          strings.TrimSpace(in.Name),
		Price:         in.Price,
		PurchasePrice: in.PurchasePrice,
		Stock:         in.Stock,
	})
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *CatalogUsecase) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.products.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CatalogUsecase) ListServices(ctx context.Context) ([]model.Service, error) {
	items, err := u.services.List(ctx)
	if err != nil {
		return []model.Service{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *CatalogUsecase) CreateService(ctx context.Context, in ServiceInput) (model.Service, error) {
	if err := validateServiceInput(in); err != nil {
		return model.Service{}, err
	}

	s, err := u.services.Create(ctx, model.Service{
		Name:  strings.TrimSpace(in.Name),
		Price: in.Price,
	})
	if err != nil {
		return model.Service{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *CatalogUsecase) UpdateService(ctx context.Context, id int64, in ServiceInput) (model.Service, error) {
	if id <= 0 {
		return model.Service{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateServiceInput(in); err != nil {
		return model.Service{}, err
	}

	err := u.services.Update(ctx, model.Service{
		ID:    id,
		Name:  strings.TrimSpace(in.Name),
		Price: in.Price,
	})
	if err == repo.ErrNotFound {
		return model.Service{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Service{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	s, err := u.services.FindByID(ctx, id)
	if err != nil {
		return model.Service{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *CatalogUsecase) DeleteService(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.services.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price <= 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be positive")
	}
	if in.PurchasePrice < 0 {
		return NewHTTPError(http.StatusBadRequest, "purchase_price must not be negative")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must not be negative")
	}
	return nil
}

func validateServiceInput(in ServiceInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price <= 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be positive")
	}
	return nil
}
