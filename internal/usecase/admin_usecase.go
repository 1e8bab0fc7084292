package usecase

import (
	"context"
	"strconv"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"
	"kiosk/internal/searchstore"
)

// 管理画面の人物一覧。役割ごとに別テーブルで表示する。
type PeoplePageOutput struct {
	Admins      []model.User `json:"admins"`
	Maintainers []model.User `json:"maintainers"`
	Users       []model.User `json:"users"`
}

type AdminUsecase struct {
	gateway repo.BackendGateway
}

// DI
func NewAdminUsecase(gateway repo.BackendGateway) *AdminUsecase {
	return &AdminUsecase{gateway: gateway}
}

// 人物検索の対象フィールド（名前・メール・ID）
func userSearchFields() map[string]searchstore.Field[model.User] {
	return map[string]searchstore.Field[model.User]{
		"name":  func(u model.User) string { return u.Name },
		"email": func(u model.User) string { return u.Email },
		"id":    func(u model.User) string { return strconv.FormatInt(u.ID, 10) },
	}
}

// LoadPeoplePage は役割ごとにユーザーを取得する。
// searchTermがあれば各一覧をその場で絞り込む（サーバーへの再問い合わせはしない）。
func (u *AdminUsecase) LoadPeoplePage(ctx context.Context, s model.Session, searchTerm string) (PeoplePageOutput, error) {
	admins, err := u.gateway.GetUsersByRole(ctx, s, model.RoleAdmin)
	if err != nil {
		return PeoplePageOutput{}, fromGatewayError(err)
	}
	maintainers, err := u.gateway.GetUsersByRole(ctx, s, model.RoleMaintainer)
	if err != nil {
		return PeoplePageOutput{}, fromGatewayError(err)
	}
	users, err := u.gateway.GetUsersByRole(ctx, s, model.RoleUser)
	if err != nil {
		return PeoplePageOutput{}, fromGatewayError(err)
	}

	out := PeoplePageOutput{Admins: admins, Maintainers: maintainers, Users: users}
	if searchTerm != "" {
		out.Admins = searchUsers(admins, searchTerm)
		out.Maintainers = searchUsers(maintainers, searchTerm)
		out.Users = searchUsers(users, searchTerm)
	}
	return out, nil
}

func searchUsers(users []model.User, term string) []model.User {
	store := searchstore.New(users, userSearchFields())
	store.Search(term)
	return store.Filtered()
}
