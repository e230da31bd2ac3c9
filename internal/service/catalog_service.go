package service

import (
	"errors"

	"go-pos-ws/internal/model"
	"go-pos-ws/internal/repository"
	"go-pos-ws/internal/ws"
	"go-pos-ws/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

type CatalogService interface {
	CreateCategory(req *model.Category) error
	GetAllCategories() ([]model.Category, error)
	GetCategoryByID(id uuid.UUID) (*model.Category, error)
	UpdateCategory(id uuid.UUID, req *model.Category) (*model.Category, error)
	DeleteCategory(id uuid.UUID) error

	CreateProduct(req *model.Product) error
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)
	GetProductsByCategory(categoryID uuid.UUID) ([]model.Product, error)
	GetProductByBarcode(barcode string) (*model.Product, error)
	SearchProducts(term string) ([]model.Product, error)
	UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	wsHub        *ws.Hub
}

func NewCatalogService(cRepo repository.CategoryRepository, pRepo repository.ProductRepository, hub *ws.Hub) CatalogService {
	return &catalogService{
		categoryRepo: cRepo,
		productRepo:  pRepo,
		wsHub:        hub,
	}
}

func (s *catalogService) CreateCategory(req *model.Category) error {
	if err := validator.FirstError(req); err != nil {
		return err
	}
	return s.categoryRepo.Create(req)
}

func (s *catalogService) GetAllCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) GetCategoryByID(id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) UpdateCategory(id uuid.UUID, req *model.Category) (*model.Category, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}
	existing, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	if err := s.categoryRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteCategory removes the category. Products referencing it survive with
// a NULL category, matching the schema's ON DELETE SET NULL.
func (s *catalogService) DeleteCategory(id uuid.UUID) error {
	deleted, err := s.categoryRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *catalogService) CreateProduct(req *model.Product) error {
	if err := validator.FirstError(req); err != nil {
		return err
	}
	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	s.broadcastProduct("product_created", req)
	return nil
}

func (s *catalogService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) GetProductsByCategory(categoryID uuid.UUID) ([]model.Product, error) {
	return s.productRepo.FindByCategory(categoryID)
}

func (s *catalogService) GetProductByBarcode(barcode string) (*model.Product, error) {
	product, err := s.productRepo.FindByBarcode(barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) SearchProducts(term string) ([]model.Product, error) {
	return s.productRepo.Search(term)
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}
	existing, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Price = req.Price
	existing.CategoryID = req.CategoryID
	existing.Stock = req.Stock
	existing.Barcode = req.Barcode
	existing.Description = req.Description
	existing.Image = req.Image
	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	s.broadcastProduct("product_updated", existing)
	return existing, nil
}

func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	deleted, err := s.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	return nil
}

func (s *catalogService) broadcastProduct(action string, product *model.Product) {
	if s.wsHub == nil {
		return
	}
	s.wsHub.BroadcastEvent(map[string]interface{}{
		"type":   "stock_update",
		"action": action,
		"product": map[string]interface{}{
			"id":    product.ID,
			"name":  product.Name,
			"stock": product.Stock,
			"price": product.Price,
		},
	})
}
