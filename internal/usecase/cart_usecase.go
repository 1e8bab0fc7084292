package usecase

import (
	"context"
	"net/http"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"
)

// CartUsecase は画面操作によるカート変更（追加・変更・削除）。
// カタログ再取得時の刈り込みはCatalogUsecaseが唯一の書き手で、
// ここはそれ以外の変更を受け持つ。カートは常に丸ごと保存して返す。
type CartUsecase struct {
	cartRepo repo.CartStateRepository
}

// DI
func NewCartUsecase(cartRepo repo.CartStateRepository) *CartUsecase {
	return &CartUsecase{cartRepo: cartRepo}
}

func (u *CartUsecase) load(ctx context.Context, sessionID string) (model.CartState, error) {
	cart, err := u.cartRepo.Load(ctx, sessionID)
	if err == repo.ErrNotFound {
		return model.NewCartState(sessionID), nil
	}
	if err != nil {
		return model.CartState{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cart, nil
}

func (u *CartUsecase) GetCart(ctx context.Context, s model.Session) (model.CartState, error) {
	if s.ID == "" {
		return model.CartState{}, NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return u.load(ctx, s.ID)
}

// AddItem は同一商品なら数量を加算する。
func (u *CartUsecase) AddItem(ctx context.Context, s model.Session, productID int64, qty int64) (model.CartState, error) {
	if s.ID == "" {
		return model.CartState{}, NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	if productID <= 0 {
		return model.CartState{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if qty < 1 {
		return model.CartState{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	cart, err := u.load(ctx, s.ID)
	if err != nil {
		return model.CartState{}, err
	}

	newCart := cart.SetQuantity(productID, cart.Quantity(productID)+qty)
	if err := u.cartRepo.Save(ctx, newCart); err != nil {
		return model.CartState{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return newCart, nil
}

// SetQuantity は数量の置き換え（加算ではない）。
func (u *CartUsecase) SetQuantity(ctx context.Context, s model.Session, productID int64, qty int64) (model.CartState, error) {
	if s.ID == "" {
		return model.CartState{}, NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	if productID <= 0 {
		return model.CartState{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if qty < 1 {
		return model.CartState{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	cart, err := u.load(ctx, s.ID)
	if err != nil {
		return model.CartState{}, err
	}

	newCart := cart.SetQuantity(productID, qty)
	if err := u.cartRepo.Save(ctx, newCart); err != nil {
		return model.CartState{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return newCart, nil
}

func (u *CartUsecase) RemoveItem(ctx context.Context, s model.Session, productID int64) (model.CartState, error) {
	if s.ID == "" {
		return model.CartState{}, NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	if productID <= 0 {
		return model.CartState{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	cart, err := u.load(ctx, s.ID)
	if err != nil {
		return model.CartState{}, err
	}

	newCart := cart.SetQuantity(productID, 0)
	if err := u.cartRepo.Save(ctx, newCart); err != nil {
		return model.CartState{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return newCart, nil
}
