package service

import (
	"errors"

	"go-pos-ws/internal/model"
	"go-pos-ws/internal/repository"
	"go-pos-ws/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

type CustomerService interface {
	CreateCustomer(req *model.Customer) error
	GetAllCustomers() ([]model.Customer, error)
	GetCustomerByID(id uuid.UUID) (*model.Customer, error)
	SearchCustomers(term string) ([]model.Customer, error)
	UpdateCustomer(id uuid.UUID, req *model.Customer) (*model.Customer, error)
	DeleteCustomer(id uuid.UUID) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: repo}
}

func (s *customerService) CreateCustomer(req *model.Customer) error {
	if err := validator.FirstError(req); err != nil {
		return err
	}
	return s.customerRepo.Create(req)
}

func (s *customerService) GetAllCustomers() ([]model.Customer, error) {
	return s.customerRepo.FindAll()
}

func (s *customerService) GetCustomerByID(id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) SearchCustomers(term string) ([]model.Customer, error) {
	return s.customerRepo.Search(term)
}

func (s *customerService) UpdateCustomer(id uuid.UUID, req *model.Customer) (*model.Customer, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}
	existing, err := s.GetCustomerByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	if err := s.customerRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *customerService) DeleteCustomer(id uuid.UUID) error {
	deleted, err := s.customerRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCustomerNotFound
	}
	return nil
}
