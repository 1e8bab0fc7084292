package usecase_test

import (
	"context"
	"encoding/json"

	"kiosk/internal/domain/model"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type GatewayMock struct{ mock.Mock }

func (m *GatewayMock) GetUser(ctx context.Context, s model.Session) (model.User, error) {
	args := m.Called(ctx, s)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *GatewayMock) GetProducts(ctx context.Context, s model.Session) ([]model.Product, error) {
	args := m.Called(ctx, s)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *GatewayMock) QueryTransactions(ctx context.Context, s model.Session, q model.TransactionQuery) ([]model.Transaction, error) {
	args := m.Called(ctx, s, q)
	transactions, _ := args.Get(0).([]model.Transaction)
	return transactions, args.Error(1)
}

func (m *GatewayMock) GetDetailedTransaction(ctx context.Context, s model.Session, transactionID int64) (model.Transaction, error) {
	args := m.Called(ctx, s, transactionID)
	t, _ := args.Get(0).(model.Transaction)
	return t, args.Error(1)
}

func (m *GatewayMock) UndoTransaction(ctx context.Context, s model.Session, transactionID int64) error {
	args := m.Called(ctx, s, transactionID)
	return args.Error(0)
}

func (m *GatewayMock) GetUsersByRole(ctx context.Context, s model.Session, role model.Role) ([]model.User, error) {
	args := m.Called(ctx, s, role)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *GatewayMock) BestSellingProduct(ctx context.Context, s model.Session, tr model.TimeRange) (model.BestSellingProduct, error) {
	args := m.Called(ctx, s, tr)
	p, _ := args.Get(0).(model.BestSellingProduct)
	return p, args.Error(1)
}

func (m *GatewayMock) Stats(ctx context.Context, s model.Session, name string) (json.RawMessage, error) {
	args := m.Called(ctx, s, name)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

type CartStateRepoMock struct{ mock.Mock }

func (m *CartStateRepoMock) Load(ctx context.Context, sessionID string) (model.CartState, error) {
	args := m.Called(ctx, sessionID)
	cart, _ := args.Get(0).(model.CartState)
	return cart, args.Error(1)
}

func (m *CartStateRepoMock) Save(ctx context.Context, cart model.CartState) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}
