package repository

import (
	"go-pos-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByCategory(categoryID uuid.UUID) ([]model.Product, error)
	FindByBarcode(barcode string) (*model.Product, error)
	Search(term string) ([]model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) (bool, error)
	DecrementStock(tx *gorm.DB, id uuid.UUID, quantity int) (bool, error)
	CountAll() (int64, error)
	CountLowStock(threshold int) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByCategory(categoryID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("category_id = ?", categoryID).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByBarcode(barcode string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "barcode = ?", barcode).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Search matches the name or barcode by substring, the way the terminal's
// search box queries the catalog.
func (r *productRepo) Search(term string) ([]model.Product, error) {
	var products []model.Product
	pattern := "%" + term + "%"
	err := r.db.Preload("Category").
		Where("name LIKE ? OR barcode LIKE ?", pattern, pattern).
		Order("name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) (bool, error) {
	res := r.db.Delete(&model.Product{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// DecrementStock runs the guarded single-statement decrement inside the
// caller's transaction handle. Zero rows affected means the row is gone or
// the remaining stock is below the requested quantity; either way the caller
// must abort its unit of work.
func (r *productRepo) DecrementStock(tx *gorm.DB, id uuid.UUID, quantity int) (bool, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	return res.RowsAffected > 0, res.Error
}

func (r *productRepo) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepo) CountLowStock(threshold int) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("stock < ?", threshold).Count(&count).Error
	return count, err
}
