package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wareflow/wareflow_backend/internal/apperrors"
	"github.com/wareflow/wareflow_backend/internal/core/domain"
	portsrepo "github.com/wareflow/wareflow_backend/internal/core/ports/repositories"
	portssvc "github.com/wareflow/wareflow_backend/internal/core/ports/services"
	"github.com/wareflow/wareflow_backend/internal/core/services"
	"github.com/wareflow/wareflow_backend/internal/dto"
)

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepository = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.BalancePayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentsByParty(ctx context.Context, party domain.PartyRef) ([]domain.BalancePayment, error) {
	args := m.Called(ctx, party)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalancePayment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentByReceiptNo(ctx context.Context, receiptNo string) (*domain.BalancePayment, error) {
	args := m.Called(ctx, receiptNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalancePayment), args.Error(1)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepository = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) MarkCustomerDeleted(ctx context.Context, customerID string, deletedAt time.Time) error {
	args := m.Called(ctx, customerID, deletedAt)
	return args.Error(0)
}

// --- Mock SupplierRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

var _ portsrepo.SupplierRepository = (*MockSupplierRepository)(nil)

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) MarkSupplierDeleted(ctx context.Context, supplierID string, deletedAt time.Time) error {
	args := m.Called(ctx, supplierID, deletedAt)
	return args.Error(0)
}

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepository = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) FindSaleByInvoiceNo(ctx context.Context, invoiceNo string) (*domain.Sale, error) {
	args := m.Called(ctx, invoiceNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

// --- Mock PurchaseRepository ---
type MockPurchaseRepository struct {
	mock.Mock
}

var _ portsrepo.PurchaseRepository = (*MockPurchaseRepository)(nil)

func (m *MockPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindPurchaseByReferenceNo(ctx context.Context, referenceNo string) (*domain.Purchase, error) {
	args := m.Called(ctx, referenceNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

// --- Test Suite Setup ---
type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo  *MockPaymentRepository
	mockCustomerRepo *MockCustomerRepository
	mockSupplierRepo *MockSupplierRepository
	mockSaleRepo     *MockSaleRepository
	mockPurchaseRepo *MockPurchaseRepository
	service          portssvc.PaymentSvcFacade
	customer         domain.Customer
	supplier         domain.Supplier
	sale             domain.Sale
	purchase         domain.Purchase
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.service = services.NewPaymentService(
		suite.mockPaymentRepo,
		suite.mockCustomerRepo,
		suite.mockSupplierRepo,
		suite.mockSaleRepo,
		suite.mockPurchaseRepo,
	)

	suite.customer = domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       "Acme Traders",
	}
	suite.supplier = domain.Supplier{
		SupplierID: uuid.NewString(),
		Name:       "Global Supplies Ltd",
	}
	suite.sale = domain.Sale{
		SaleID:      uuid.NewString(),
		InvoiceNo:   "INV-1001",
		CustomerID:  suite.customer.CustomerID,
		TotalAmount: decimal.NewFromInt(500),
		PaidAmount:  decimal.NewFromInt(200),
		Balance:     decimal.NewFromInt(300),
	}
	suite.purchase = domain.Purchase{
		PurchaseID:  uuid.NewString(),
		ReferenceNo: "PO-2001",
		SupplierID:  suite.supplier.SupplierID,
		TotalAmount: decimal.NewFromInt(1000),
		PaidAmount:  decimal.Zero,
		Balance:     decimal.NewFromInt(1000),
	}
}

func strPtr(s string) *string {
	return &s
}

// --- RecordPayment ---

func (suite *PaymentServiceTestSuite) TestRecordPayment_CustomerWithSale_Success() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		CustomerID:    strPtr(suite.customer.CustomerID),
		SaleID:        strPtr(suite.sale.InvoiceNo),
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: "CASH",
		Notes:         "partial settlement",
	}

	paidSale := suite.sale
	paidSale.PaidAmount = decimal.NewFromInt(300)
	paidSale.Balance = decimal.NewFromInt(200)

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	// Once to validate the outstanding balance, once to reload after commit.
	suite.mockSaleRepo.On("FindSaleByInvoiceNo", ctx, suite.sale.InvoiceNo).Return(&suite.sale, nil).Once()
	suite.mockSaleRepo.On("FindSaleByInvoiceNo", ctx, suite.sale.InvoiceNo).Return(&paidSale, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.BalancePayment")).Return(nil).Once()

	details, err := suite.service.RecordPayment(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(details)
	suite.NotEmpty(details.PaymentID)
	suite.True(strings.HasPrefix(details.ReceiptNo, "BP-"))
	suite.Equal(domain.PartyCustomer, details.Party.Kind)
	suite.Equal(suite.customer.CustomerID, details.Party.ID)
	suite.Require().NotNil(details.Ledger)
	suite.Equal(domain.LedgerSale, details.Ledger.Kind)
	suite.Equal(suite.sale.InvoiceNo, details.Ledger.Ref)
	suite.Equal(domain.MethodCash, details.PaymentMethod)
	suite.Require().NotNil(details.Sale)
	suite.True(details.Sale.Balance.Equal(decimal.NewFromInt(200)))
	suite.Require().NotNil(details.Customer)
	suite.Equal(suite.customer.Name, details.Customer.Name)
	suite.Nil(details.Supplier)
	suite.Nil(details.Purchase)

	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_SupplierWithPurchase_Success() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		SupplierID:    strPtr(suite.supplier.SupplierID),
		PurchaseID:    strPtr(suite.purchase.ReferenceNo),
		Amount:        decimal.NewFromInt(1000),
		PaymentMethod: "BANK_TRANSFER",
	}

	settledPurchase := suite.purchase
	settledPurchase.PaidAmount = decimal.NewFromInt(1000)
	settledPurchase.Balance = decimal.Zero

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, suite.supplier.SupplierID).Return(&suite.supplier, nil).Once()
	suite.mockPurchaseRepo.On("FindPurchaseByReferenceNo", ctx, suite.purchase.ReferenceNo).Return(&suite.purchase, nil).Once()
	suite.mockPurchaseRepo.On("FindPurchaseByReferenceNo", ctx, suite.purchase.ReferenceNo).Return(&settledPurchase, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.BalancePayment")).Return(nil).Once()

	details, err := suite.service.RecordPayment(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.PartySupplier, details.Party.Kind)
	suite.Require().NotNil(details.Purchase)
	suite.True(details.Purchase.Balance.IsZero())
	suite.Nil(details.Customer)
	suite.Nil(details.Sale)

	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockSupplierRepo.AssertExpectations(suite.T())
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_GeneralPaymentWithoutLedger() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		CustomerID:    strPtr(suite.customer.CustomerID),
		Amount:        decimal.NewFromInt(50),
		PaymentMethod: "CARD",
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.BalancePayment")).Return(nil).Once()

	details, err := suite.service.RecordPayment(ctx, req)

	suite.Require().NoError(err)
	suite.Nil(details.Ledger)
	suite.Nil(details.Sale)
	suite.Nil(details.Purchase)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "FindSaleByInvoiceNo", mock.Anything, mock.Anything)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		CustomerID:    strPtr(suite.customer.CustomerID),
		Amount:        decimal.Zero,
		PaymentMethod: "CASH",
	}

	_, err := suite.service.RecordPayment(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAmountNotPositive)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_NoParty() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: "CASH",
	}

	_, err := suite.service.RecordPayment(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPartyRequired)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_BothParties() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		CustomerID:    strPtr(suite.customer.CustomerID),
		SupplierID:    strPtr(suite.supplier.SupplierID),
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: "CASH",
	}

	_, err := suite.service.RecordPayment(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrBothParties)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "FindCustomerByID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_BothLedgerRefs() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		CustomerID:    strPtr(suite.customer.CustomerID),
		SaleID:        strPtr(suite.sale.InvoiceNo),
		PurchaseID:    strPtr(suite.purchase.ReferenceNo),
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: "CASH",
	}

	_, err := suite.service.RecordPayment(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrBothLedgerRefs)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_CustomerNotFound() {
	ctx := context.Background()
	missingID := uuid.NewString()
	req := dto.RecordPaymentRequest{
		CustomerID:    strPtr(missingID),
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: "CASH",
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, missingID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordPayment(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_SaleNotFound() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		CustomerID:    strPtr(suite.customer.CustomerID),
		SaleID:        strPtr("INV-MISSING"),
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: "CASH",
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockSaleRepo.On("FindSaleByInvoiceNo", ctx, "INV-MISSING").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordPayment(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_NoOutstandingBalance() {
	ctx := context.Background()
	settledSale := suite.sale
	settledSale.PaidAmount = settledSale.TotalAmount
	settledSale.Balance = decimal.Zero

	req := dto.RecordPaymentRequest{
		CustomerID:    strPtr(suite.customer.CustomerID),
		SaleID:        strPtr(settledSale.InvoiceNo),
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: "CASH",
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockSaleRepo.On("FindSaleByInvoiceNo", ctx, settledSale.InvoiceNo).Return(&settledSale, nil).Once()

	_, err := suite.service.RecordPayment(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNoOutstandingBalance)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_ExceedsBalance() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		CustomerID:    strPtr(suite.customer.CustomerID),
		SaleID:        strPtr(suite.sale.InvoiceNo),
		Amount:        suite.sale.Balance.Add(decimal.NewFromInt(1)),
		PaymentMethod: "CASH",
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockSaleRepo.On("FindSaleByInvoiceNo", ctx, suite.sale.InvoiceNo).Return(&suite.sale, nil).Once()

	_, err := suite.service.RecordPayment(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrExceedsBalance)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_ExactBalanceAccepted() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		CustomerID:    strPtr(suite.customer.CustomerID),
		SaleID:        strPtr(suite.sale.InvoiceNo),
		Amount:        suite.sale.Balance,
		PaymentMethod: "CASH",
	}

	settledSale := suite.sale
	settledSale.PaidAmount = settledSale.TotalAmount
	settledSale.Balance = decimal.Zero

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockSaleRepo.On("FindSaleByInvoiceNo", ctx, suite.sale.InvoiceNo).Return(&suite.sale, nil).Once()
	suite.mockSaleRepo.On("FindSaleByInvoiceNo", ctx, suite.sale.InvoiceNo).Return(&settledSale, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.BalancePayment")).Return(nil).Once()

	details, err := suite.service.RecordPayment(ctx, req)

	suite.Require().NoError(err)
	suite.True(details.Sale.Balance.IsZero())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_InsufficientBalanceAtCommit() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		CustomerID:    strPtr(suite.customer.CustomerID),
		SaleID:        strPtr(suite.sale.InvoiceNo),
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: "CASH",
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockSaleRepo.On("FindSaleByInvoiceNo", ctx, suite.sale.InvoiceNo).Return(&suite.sale, nil).Once()
	// A concurrent payment drained the balance between validation and commit.
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.BalancePayment")).Return(apperrors.ErrInsufficientBalance).Once()

	_, err := suite.service.RecordPayment(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_SaveError() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		CustomerID:    strPtr(suite.customer.CustomerID),
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: "CASH",
	}
	repoErr := assert.AnError

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.BalancePayment")).Return(repoErr).Once()

	_, err := suite.service.RecordPayment(ctx, req)

	suite.Require().Error(err)
	suite.Contains(err.Error(), repoErr.Error())
}

// --- ListPayments ---

func (suite *PaymentServiceTestSuite) TestListPayments_CustomerHistory() {
	ctx := context.Background()
	party := domain.PartyRef{Kind: domain.PartyCustomer, ID: suite.customer.CustomerID}

	newer := domain.BalancePayment{
		PaymentID: uuid.NewString(),
		Party:     party,
		Ledger:    &domain.LedgerRef{Kind: domain.LedgerSale, Ref: suite.sale.InvoiceNo},
		Amount:    decimal.NewFromInt(100),
		ReceiptNo: "BP-2000-aaaaaa",
		CreatedAt: time.Now(),
	}
	older := domain.BalancePayment{
		PaymentID: uuid.NewString(),
		Party:     party,
		Ledger:    &domain.LedgerRef{Kind: domain.LedgerSale, Ref: suite.sale.InvoiceNo},
		Amount:    decimal.NewFromInt(50),
		ReceiptNo: "BP-1000-bbbbbb",
		CreatedAt: time.Now().Add(-time.Hour),
	}

	suite.mockPaymentRepo.On("FindPaymentsByParty", ctx, party).Return([]domain.BalancePayment{newer, older}, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	// Both payments reference the same sale; it is resolved once.
	suite.mockSaleRepo.On("FindSaleByInvoiceNo", ctx, suite.sale.InvoiceNo).Return(&suite.sale, nil).Once()

	details, err := suite.service.ListPayments(ctx, dto.ListPaymentsParams{CustomerID: strPtr(suite.customer.CustomerID)})

	suite.Require().NoError(err)
	suite.Require().Len(details, 2)
	suite.Equal(newer.PaymentID, details[0].PaymentID)
	suite.Equal(older.PaymentID, details[1].PaymentID)
	suite.Require().NotNil(details[0].Customer)
	suite.Equal(suite.customer.Name, details[0].Customer.Name)
	suite.Require().NotNil(details[0].Sale)
	suite.Require().NotNil(details[1].Sale)

	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestListPayments_NoFilter() {
	ctx := context.Background()

	_, err := suite.service.ListPayments(ctx, dto.ListPaymentsParams{})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPartyRequired)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "FindPaymentsByParty", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestListPayments_BothFilters() {
	ctx := context.Background()
	params := dto.ListPaymentsParams{
		CustomerID: strPtr(suite.customer.CustomerID),
		SupplierID: strPtr(suite.supplier.SupplierID),
	}

	_, err := suite.service.ListPayments(ctx, params)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrBothParties)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "FindPaymentsByParty", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestListPayments_EmptyHistory() {
	ctx := context.Background()
	party := domain.PartyRef{Kind: domain.PartySupplier, ID: suite.supplier.SupplierID}

	suite.mockPaymentRepo.On("FindPaymentsByParty", ctx, party).Return([]domain.BalancePayment{}, nil).Once()
	suite.mockSupplierRepo.On("FindSupplierByID", ctx, suite.supplier.SupplierID).Return(&suite.supplier, nil).Once()

	details, err := suite.service.ListPayments(ctx, dto.ListPaymentsParams{SupplierID: strPtr(suite.supplier.SupplierID)})

	suite.Require().NoError(err)
	suite.Empty(details)
}

// --- GetPaymentByReceiptNo ---

func (suite *PaymentServiceTestSuite) TestGetPaymentByReceiptNo_Success() {
	ctx := context.Background()
	payment := domain.BalancePayment{
		PaymentID: uuid.NewString(),
		Party:     domain.PartyRef{Kind: domain.PartyCustomer, ID: suite.customer.CustomerID},
		Ledger:    &domain.LedgerRef{Kind: domain.LedgerSale, Ref: suite.sale.InvoiceNo},
		Amount:    decimal.NewFromInt(100),
		ReceiptNo: "BP-1700000000000-1a2b3c",
		CreatedAt: time.Now(),
	}

	suite.mockPaymentRepo.On("FindPaymentByReceiptNo", ctx, payment.ReceiptNo).Return(&payment, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockSaleRepo.On("FindSaleByInvoiceNo", ctx, suite.sale.InvoiceNo).Return(&suite.sale, nil).Once()

	details, err := suite.service.GetPaymentByReceiptNo(ctx, payment.ReceiptNo)

	suite.Require().NoError(err)
	suite.Equal(payment.PaymentID, details.PaymentID)
	suite.Require().NotNil(details.Customer)
	suite.Require().NotNil(details.Sale)
}

func (suite *PaymentServiceTestSuite) TestGetPaymentByReceiptNo_NotFound() {
	ctx := context.Background()

	suite.mockPaymentRepo.On("FindPaymentByReceiptNo", ctx, "BP-unknown").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetPaymentByReceiptNo(ctx, "BP-unknown")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Test Suite ---
func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
