package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"kiosk/internal/domain/model"
	"kiosk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminUsecase_LoadPeoplePage_GroupsByRole(t *testing.T) {
	ctx := context.Background()
	gw := new(GatewayMock)
	uc := usecase.NewAdminUsecase(gw)

	admins := []model.User{{ID: 1, Name: "Anna", Role: model.RoleAdmin}}
	maintainers := []model.User{{ID: 2, Name: "Bo", Role: model.RoleMaintainer}}
	users := []model.User{{ID: 3, Name: "Cilla", Role: model.RoleUser}}

	gw.On("GetUsersByRole", mock.Anything, session(), model.RoleAdmin).Return(admins, nil)
	gw.On("GetUsersByRole", mock.Anything, session(), model.RoleMaintainer).Return(maintainers, nil)
	gw.On("GetUsersByRole", mock.Anything, session(), model.RoleUser).Return(users, nil)

	out, err := uc.LoadPeoplePage(ctx, session(), "")

	assert.NoError(t, err)
	assert.Equal(t, admins, out.Admins)
	assert.Equal(t, maintainers, out.Maintainers)
	assert.Equal(t, users, out.Users)
}

func TestAdminUsecase_LoadPeoplePage_SearchFiltersEachList(t *testing.T) {
	ctx := context.Background()
	gw := new(GatewayMock)
	uc := usecase.NewAdminUsecase(gw)

	admins := []model.User{
		{ID: 1, Name: "Anna", Email: "anna@example.com"},
		{ID: 2, Name: "Bo", Email: "bo@example.com"},
	}
	gw.On("GetUsersByRole", mock.Anything, session(), model.RoleAdmin).Return(admins, nil)
	gw.On("GetUsersByRole", mock.Anything, session(), model.RoleMaintainer).Return([]model.User{}, nil)
	gw.On("GetUsersByRole", mock.Anything, session(), model.RoleUser).Return([]model.User{}, nil)

	out, err := uc.LoadPeoplePage(ctx, session(), "anna")

	assert.NoError(t, err)
	assert.Equal(t, []model.User{admins[0]}, out.Admins)
}

// IDの数字でも探せる
func TestAdminUsecase_LoadPeoplePage_SearchMatchesID(t *testing.T) {
	ctx := context.Background()
	gw := new(GatewayMock)
	uc := usecase.NewAdminUsecase(gw)

	users := []model.User{
		{ID: 17, Name: "Anna"},
		{ID: 25, Name: "Bo"},
	}
	gw.On("GetUsersByRole", mock.Anything, session(), model.RoleAdmin).Return([]model.User{}, nil)
	gw.On("GetUsersByRole", mock.Anything, session(), model.RoleMaintainer).Return([]model.User{}, nil)
	gw.On("GetUsersByRole", mock.Anything, session(), model.RoleUser).Return(users, nil)

	out, err := uc.LoadPeoplePage(ctx, session(), "17")

	assert.NoError(t, err)
	assert.Equal(t, []model.User{users[0]}, out.Users)
}

func TestStatsUsecase_Opaque_UnknownName(t *testing.T) {
	uc := usecase.NewStatsUsecase(new(GatewayMock))

	_, err := uc.Opaque(context.Background(), session(), "does_not_exist")

	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusNotFound, he.Status)
	}
}

func TestStatsUsecase_Opaque_PassesThroughJSON(t *testing.T) {
	ctx := context.Background()
	gw := new(GatewayMock)
	uc := usecase.NewStatsUsecase(gw)

	raw := json.RawMessage(`{"total": 3}`)
	gw.On("Stats", mock.Anything, session(), "purchases").Return(raw, nil)

	out, err := uc.Opaque(ctx, session(), "purchases")

	assert.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestStatsUsecase_BestSelling(t *testing.T) {
	ctx := context.Background()
	gw := new(GatewayMock)
	uc := usecase.NewStatsUsecase(gw)

	start := int64(1000)
	tr := model.TimeRange{Start: &start}
	want := model.BestSellingProduct{ID: 1, Name: "Kaffe", TotalSold: 99}

	gw.On("BestSellingProduct", mock.Anything, session(), tr).Return(want, nil)

	out, err := uc.BestSelling(ctx, session(), tr)

	assert.NoError(t, err)
	assert.Equal(t, want, out)
}
