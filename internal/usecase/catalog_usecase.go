package usecase

import (
	"context"
	"net/http"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"
	"kiosk/internal/searchstore"
)

// ReconcileCatalog は取得直後のカタログとカートを同時に整える純関数。
// onlyAvailable のとき在庫情報のない商品（販売終了）を除外し、
// 除外・消滅した商品のカートエントリも一緒に落とす。
// 戻り値は必ず対でコミットすること。片方だけ差し替えると、
// 消えた商品がカートに残ったままの画面を描画してしまう。
// 同じカタログに対しては冪等。
func ReconcileCatalog(rawCatalog []model.Product, cart model.CartState, onlyAvailable bool) ([]model.Product, model.CartState) {
	filtered := make([]model.Product, 0, len(rawCatalog))
	products := make(map[int64]int64, len(cart.Products))

	for _, p := range rawCatalog {
		if onlyAvailable && p.Stock == nil {
			continue
		}
		filtered = append(filtered, p)

		// 数量0以下の壊れたエントリは引き継がない
		if qty, ok := cart.Products[p.ID]; ok && qty > 0 {
			products[p.ID] = qty
		}
	}

	return filtered, model.CartState{SessionID: cart.SessionID, Products: products}
}

// 商品ページのライブ検索対象
func productSearchFields() map[string]searchstore.Field[model.Product] {
	return map[string]searchstore.Field[model.Product]{
		"name":        func(p model.Product) string { return p.Name },
		"description": func(p model.Product) string { return p.Description },
	}
}

type CatalogPageOutput struct {
	Products []model.Product `json:"products"`
	Cart     model.CartState `json:"cart"`
}

type CatalogUsecase struct {
	gateway  repo.BackendGateway
	cartRepo repo.CartStateRepository
}

// DI
func NewCatalogUsecase(gateway repo.BackendGateway, cartRepo repo.CartStateRepository) *CatalogUsecase {
	return &CatalogUsecase{
		gateway:  gateway,
		cartRepo: cartRepo,
	}
}

// LoadCatalogPage は商品ページの読み込み。カタログを取得し、
// 保存済みカートとリコンサイルして、刈り込んだカートを保存してから
// 両方を1つの値で返す。searchTermは表示の絞り込みだけで、
// カートの刈り込みには関与しない。
func (u *CatalogUsecase) LoadCatalogPage(ctx context.Context, s model.Session, onlyAvailable bool, searchTerm string) (CatalogPageOutput, error) {
	if s.ID == "" {
		return CatalogPageOutput{}, NewHTTPError(http.StatusUnauthorized, "missing session")
	}

	rawCatalog, err := u.gateway.GetProducts(ctx, s)
	if err != nil {
		return CatalogPageOutput{}, fromGatewayError(err)
	}

	cart, err := u.cartRepo.Load(ctx, s.ID)
	if err == repo.ErrNotFound {
		// 新しいセッションは空のカートから
		cart = model.NewCartState(s.ID)
	} else if err != nil {
		return CatalogPageOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	filteredCatalog, newCart := ReconcileCatalog(rawCatalog, cart, onlyAvailable)

	if err := u.cartRepo.Save(ctx, newCart); err != nil {
		return CatalogPageOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products := filteredCatalog
	if searchTerm != "" {
		store := searchstore.New(filteredCatalog, productSearchFields())
		store.Search(searchTerm)
		products = store.Filtered()
	}

	return CatalogPageOutput{Products: products, Cart: newCart}, nil
}
