package model_test

import (
	"testing"
	"time"

	"kiosk/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTransactionQuery_RollingWindow(t *testing.T) {
	q := model.DefaultTransactionQuery()

	assert.Equal(t, []int64{}, q.UserIDs)
	assert.Equal(t, []int64{}, q.ProductIDs)
	assert.Equal(t, 20, q.Limit)
	assert.Nil(t, q.Cursor)
	assert.Nil(t, q.SearchTerm)

	// startは「今から30日前」の近傍、endは開いたまま
	if assert.NotNil(t, q.TimeRange) {
		assert.Nil(t, q.TimeRange.End)
		if assert.NotNil(t, q.TimeRange.Start) {
			want := time.Now().Add(-30 * 24 * time.Hour).Unix()
			assert.InDelta(t, want, *q.TimeRange.Start, 5)
		}
	}
}

func TestTransactionQueryForUser_NoTimeBound(t *testing.T) {
	q := model.TransactionQueryForUser(42)

	assert.Equal(t, []int64{42}, q.UserIDs)
	assert.Equal(t, []int64{}, q.ProductIDs)
	assert.Equal(t, 20, q.Limit)
	assert.Nil(t, q.TimeRange)
	assert.Nil(t, q.Cursor)
}

func TestTransactionQuery_WithCursor_DoesNotMutateOriginal(t *testing.T) {
	q := model.DefaultTransactionQuery()

	q2 := q.WithCursor("page-2")

	assert.Nil(t, q.Cursor)
	if assert.NotNil(t, q2.Cursor) {
		assert.Equal(t, "page-2", *q2.Cursor)
	}
}

func TestTransactionQuery_Normalized_DefaultsLimit(t *testing.T) {
	q := model.TransactionQuery{}.Normalized()

	assert.Equal(t, model.DefaultTransactionLimit, q.Limit)
	assert.Equal(t, []int64{}, q.UserIDs)
	assert.Equal(t, []int64{}, q.ProductIDs)
}

func TestTransactionQuery_Normalized_KeepsPositiveLimit(t *testing.T) {
	q := model.TransactionQuery{Limit: 5}.Normalized()

	assert.Equal(t, 5, q.Limit)
}
