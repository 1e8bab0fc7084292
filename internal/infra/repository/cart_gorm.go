package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cart_statesの1行。カート本体はjsonbに丸ごと入れる。
// 部分更新はせず、保存は常に全置換（描画が中途半端な状態を見ないため）。
type CartStateRow struct {
	SessionID string    `gorm:"primaryKey;type:varchar(64)"`
	Products  []byte    `gorm:"type:jsonb;not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

func (CartStateRow) TableName() string {
	return "cart_states"
}

type CartStateGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartStateGormRepository(db *gorm.DB) *CartStateGormRepository {
	return &CartStateGormRepository{db: db}
}

// セッションのカートを取得。無ければ repo.ErrNotFound。
// 保存データの数量0以下はここで黙って落とす。
func (r *CartStateGormRepository) Load(ctx context.Context, sessionID string) (model.CartState, error) {
	var row CartStateRow

	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartState{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartState{}, err
	}

	products := map[int64]int64{}
	if len(row.Products) > 0 {
		if err := json.Unmarshal(row.Products, &products); err != nil {
			return model.CartState{}, err
		}
	}

	cart := model.CartState{SessionID: sessionID, Products: products}
	return cart.Normalize(), nil
}

// カートを丸ごと上書き保存（upsert）
func (r *CartStateGormRepository) Save(ctx context.Context, cart model.CartState) error {
	if cart.SessionID == "" {
		return errors.New("missing session id")
	}

	payload, err := json.Marshal(cart.Normalize().Products)
	if err != nil {
		return err
	}

	row := CartStateRow{
		SessionID: cart.SessionID,
		Products:  payload,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"products", "updated_at"}),
		}).
		Create(&row).Error
}
