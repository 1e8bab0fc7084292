package repository

import (
	"context"

	"kiosk/internal/domain/model"
)

// セッションのカートの読み書きだけを約束。
// Saveは丸ごと上書き（部分更新はしない）。
type CartStateRepository interface {
	Load(ctx context.Context, sessionID string) (model.CartState, error)
	Save(ctx context.Context, cart model.CartState) error
}
