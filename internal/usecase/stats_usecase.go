package usecase

import (
	"context"
	"encoding/json"
	"net/http"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"
)

type StatsUsecase struct {
	gateway repo.BackendGateway
}

// DI
func NewStatsUsecase(gateway repo.BackendGateway) *StatsUsecase {
	return &StatsUsecase{gateway: gateway}
}

// バックエンドにある統計エンドポイント
var statNames = map[string]bool{
	"purchases": true,
	"customers": true,
	"deposits":  true,
}

func (u *StatsUsecase) BestSelling(ctx context.Context, s model.Session, tr model.TimeRange) (model.BestSellingProduct, error) {
	p, err := u.gateway.BestSellingProduct(ctx, s, tr)
	if err != nil {
		return model.BestSellingProduct{}, fromGatewayError(err)
	}
	return p, nil
}

// Opaque は統計JSONを形に触らず返す。知らない名前は404。
func (u *StatsUsecase) Opaque(ctx context.Context, s model.Session, name string) (json.RawMessage, error) {
	if !statNames[name] {
		return nil, NewHTTPError(http.StatusNotFound, "unknown stat")
	}
	raw, err := u.gateway.Stats(ctx, s, name)
	if err != nil {
		return nil, fromGatewayError(err)
	}
	return raw, nil
}
