package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wareflow/wareflow_backend/internal/apperrors"
	"github.com/wareflow/wareflow_backend/internal/core/domain"
	portssvc "github.com/wareflow/wareflow_backend/internal/core/ports/services"
	"github.com/wareflow/wareflow_backend/internal/core/services"
	"github.com/wareflow/wareflow_backend/internal/dto"
)

type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo *MockSaleRepository
	service      portssvc.SaleSvcFacade
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.service = services.NewSaleService(suite.mockSaleRepo)
}

func (suite *SaleServiceTestSuite) TestCreateSale_Success() {
	ctx := context.Background()
	customerID := uuid.NewString()
	req := dto.CreateSaleRequest{
		InvoiceNo:   "INV-1001",
		CustomerID:  &customerID,
		TotalAmount: decimal.NewFromInt(500),
		PaidAmount:  decimal.NewFromInt(200),
	}

	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Return(nil).Once()

	sale, err := suite.service.CreateSale(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(sale.SaleID)
	suite.Equal("INV-1001", sale.InvoiceNo)
	suite.Equal(customerID, sale.CustomerID)
	suite.True(sale.Balance.Equal(decimal.NewFromInt(300)))
	suite.True(sale.Balance.Add(sale.PaidAmount).Equal(sale.TotalAmount))
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_FullyPaidUpFront() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		InvoiceNo:   "INV-1002",
		TotalAmount: decimal.NewFromInt(500),
		PaidAmount:  decimal.NewFromInt(500),
	}

	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Return(nil).Once()

	sale, err := suite.service.CreateSale(ctx, req)

	suite.Require().NoError(err)
	suite.True(sale.Balance.IsZero())
}

func (suite *SaleServiceTestSuite) TestCreateSale_NonPositiveTotal() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		InvoiceNo:   "INV-1003",
		TotalAmount: decimal.Zero,
	}

	_, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrTotalNotPositive)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCreateSale_PaidExceedsTotal() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		InvoiceNo:   "INV-1004",
		TotalAmount: decimal.NewFromInt(100),
		PaidAmount:  decimal.NewFromInt(101),
	}

	_, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPaidOverTotal)
}

func (suite *SaleServiceTestSuite) TestCreateSale_NegativePaid() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		InvoiceNo:   "INV-1005",
		TotalAmount: decimal.NewFromInt(100),
		PaidAmount:  decimal.NewFromInt(-1),
	}

	_, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPaidNegative)
}

func (suite *SaleServiceTestSuite) TestCreateSale_DuplicateInvoiceNo() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		InvoiceNo:   "INV-1001",
		TotalAmount: decimal.NewFromInt(100),
	}

	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *SaleServiceTestSuite) TestGetSaleByInvoiceNo() {
	ctx := context.Background()
	sale := domain.Sale{SaleID: uuid.NewString(), InvoiceNo: "INV-1001"}

	suite.mockSaleRepo.On("FindSaleByInvoiceNo", ctx, "INV-1001").Return(&sale, nil).Once()

	found, err := suite.service.GetSaleByInvoiceNo(ctx, "INV-1001")

	suite.Require().NoError(err)
	suite.Equal(sale.SaleID, found.SaleID)
}

func TestSaleService(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
