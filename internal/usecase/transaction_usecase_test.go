package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"
	"kiosk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTransactionUsecase_ListRecent_UsesDefaultQuery(t *testing.T) {
	ctx := context.Background()
	gw := new(GatewayMock)
	uc := usecase.NewTransactionUsecase(gw)

	transactions := []model.Transaction{{ID: 1, Amount: 12.5}}

	gw.On("QueryTransactions", mock.Anything, session(), mock.MatchedBy(func(q model.TransactionQuery) bool {
		return q.Limit == 20 &&
			len(q.UserIDs) == 0 &&
			q.TimeRange != nil && q.TimeRange.Start != nil && q.TimeRange.End == nil &&
			q.Cursor == nil
	})).Return(transactions, nil)

	out, err := uc.ListRecent(ctx, session(), nil)

	assert.NoError(t, err)
	assert.Equal(t, transactions, out)
	gw.AssertExpectations(t)
}

func TestTransactionUsecase_ListRecent_PassesCursor(t *testing.T) {
	ctx := context.Background()
	gw := new(GatewayMock)
	uc := usecase.NewTransactionUsecase(gw)

	cursor := "page-2"
	gw.On("QueryTransactions", mock.Anything, session(), mock.MatchedBy(func(q model.TransactionQuery) bool {
		return q.Cursor != nil && *q.Cursor == "page-2"
	})).Return([]model.Transaction{}, nil)

	_, err := uc.ListRecent(ctx, session(), &cursor)

	assert.NoError(t, err)
	gw.AssertExpectations(t)
}

func TestTransactionUsecase_ListForUser_ScopedWithoutTimeBound(t *testing.T) {
	ctx := context.Background()
	gw := new(GatewayMock)
	uc := usecase.NewTransactionUsecase(gw)

	gw.On("QueryTransactions", mock.Anything, session(), mock.MatchedBy(func(q model.TransactionQuery) bool {
		return len(q.UserIDs) == 1 && q.UserIDs[0] == 42 &&
			len(q.ProductIDs) == 0 &&
			q.Limit == 20 &&
			q.TimeRange == nil
	})).Return([]model.Transaction{}, nil)

	_, err := uc.ListForUser(ctx, session(), 42, nil)

	assert.NoError(t, err)
	gw.AssertExpectations(t)
}

func TestTransactionUsecase_ListForUser_InvalidUserID(t *testing.T) {
	uc := usecase.NewTransactionUsecase(new(GatewayMock))

	_, err := uc.ListForUser(context.Background(), session(), 0, nil)

	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusBadRequest, he.Status)
	}
}

func TestTransactionUsecase_List_NormalizesLimit(t *testing.T) {
	ctx := context.Background()
	gw := new(GatewayMock)
	uc := usecase.NewTransactionUsecase(gw)

	gw.On("QueryTransactions", mock.Anything, session(), mock.MatchedBy(func(q model.TransactionQuery) bool {
		return q.Limit == 20 && q.UserIDs != nil && q.ProductIDs != nil
	})).Return([]model.Transaction{}, nil)

	_, err := uc.List(ctx, session(), model.TransactionQuery{})

	assert.NoError(t, err)
	gw.AssertExpectations(t)
}

func TestTransactionUsecase_Undo_Success(t *testing.T) {
	ctx := context.Background()
	gw := new(GatewayMock)
	uc := usecase.NewTransactionUsecase(gw)

	gw.On("UndoTransaction", mock.Anything, session(), int64(9)).Return(nil)

	assert.NoError(t, uc.Undo(ctx, session(), 9))
	gw.AssertExpectations(t)
}

func TestTransactionUsecase_Undo_BackendError(t *testing.T) {
	ctx := context.Background()
	gw := new(GatewayMock)
	uc := usecase.NewTransactionUsecase(gw)

	gw.On("UndoTransaction", mock.Anything, session(), int64(9)).
		Return(&repo.StatusError{Status: http.StatusConflict, Text: "already undone"})

	err := uc.Undo(ctx, session(), 9)

	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusConflict, he.Status)
		assert.Equal(t, "already undone", he.Message)
	}
}

func TestTransactionUsecase_Detail_InvalidID(t *testing.T) {
	uc := usecase.NewTransactionUsecase(new(GatewayMock))

	_, err := uc.Detail(context.Background(), session(), 0)

	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusBadRequest, he.Status)
	}
}
