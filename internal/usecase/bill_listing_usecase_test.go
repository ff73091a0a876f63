package usecase

import (
	"context"
	"testing"

	"billed_service/internal/domain/entities"
	mock_interfaces "billed_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBillListingUseCase_Load(t *testing.T) {
	t.Run("bills are ordered most recent first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewBillListingUseCase(repo)

		repo.EXPECT().FetchAll(gomock.Any()).Return([]entities.Bill{
			{ID: "a", Date: "2021-03-13", Email: employee.Email},
			{ID: "b", Date: "2020-12-01", Email: employee.Email},
			{ID: "c", Date: "2022-01-01", Email: employee.Email},
		}, nil)

		bills, err := uc.Load(context.Background(), employee)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := []string{}
		for _, b := range bills {
			got = append(got, b.Date)
		}
		want := []string{"2022-01-01", "2021-03-13", "2020-12-01"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("unexpected order: %v", got)
			}
		}
	})

	t.Run("equal dates keep their fetch order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewBillListingUseCase(repo)

		repo.EXPECT().FetchAll(gomock.Any()).Return([]entities.Bill{
			{ID: "first", Date: "2021-03-13", Email: employee.Email},
			{ID: "second", Date: "2021-03-13", Email: employee.Email},
		}, nil)

		bills, err := uc.Load(context.Background(), employee)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bills[0].ID != "first" || bills[1].ID != "second" {
			t.Fatalf("expected stable order, got %+v", bills)
		}
	})

	t.Run("employees only see their own bills", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewBillListingUseCase(repo)

		repo.EXPECT().FetchAll(gomock.Any()).Return([]entities.Bill{
			{ID: "mine", Date: "2021-01-01", Email: employee.Email},
			{ID: "other", Date: "2021-01-02", Email: "someone@else.tld"},
		}, nil)

		bills, err := uc.Load(context.Background(), employee)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bills) != 1 || bills[0].ID != "mine" {
			t.Fatalf("expected only the employee's bill, got %+v", bills)
		}
	})

	t.Run("admins see everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewBillListingUseCase(repo)

		repo.EXPECT().FetchAll(gomock.Any()).Return([]entities.Bill{
			{ID: "a", Date: "2021-01-01", Email: "a@test.tld"},
			{ID: "b", Date: "2021-01-02", Email: "b@test.tld"},
		}, nil)

		admin := entities.User{Type: entities.UserTypeAdmin, Email: "admin@test.tld"}
		bills, err := uc.Load(context.Background(), admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bills) != 2 {
			t.Fatalf("expected both bills, got %+v", bills)
		}
	})

	t.Run("fetch failure surfaces the verbatim message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewBillListingUseCase(repo)

		repo.EXPECT().FetchAll(gomock.Any()).Return(nil, entities.NewStoreError(500))

		bills, err := uc.Load(context.Background(), employee)
		if err == nil || err.Error() != "Erreur 500" {
			t.Fatalf("expected Erreur 500, got %v", err)
		}
		if len(bills) != 0 {
			t.Fatalf("expected no bills on failure, got %+v", bills)
		}
	})
}
