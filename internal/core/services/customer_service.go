package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wareflow/wareflow_backend/internal/core/domain"
	portsrepo "github.com/wareflow/wareflow_backend/internal/core/ports/repositories"
	portssvc "github.com/wareflow/wareflow_backend/internal/core/ports/services"
	"github.com/wareflow/wareflow_backend/internal/dto"
	"github.com/wareflow/wareflow_backend/internal/middleware"
)

type customerService struct {
	customerRepo portsrepo.CustomerRepository
}

// NewCustomerService creates a new customer directory service.
func NewCustomerService(customerRepo portsrepo.CustomerRepository) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	logger.Info("Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *customerService) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomers(ctx, limit, offset)
}

// DeleteCustomer soft-deletes a customer; existing payments keep their
// reference but the customer disappears from lookups.
func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return err
	}
	if err := s.customerRepo.MarkCustomerDeleted(ctx, customerID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Customer soft-deleted", slog.String("customer_id", customerID))
	return nil
}
