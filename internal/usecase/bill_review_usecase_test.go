package usecase

import (
	"context"
	"errors"
	"testing"

	"billed_service/internal/domain/entities"
	mock_interfaces "billed_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBillReviewUseCase_Flows(t *testing.T) {
	admin := entities.User{Type: entities.UserTypeAdmin, Email: "admin@test.tld"}

	cases := []struct {
		name   string
		call   func(uc *BillReviewUseCase, ctx context.Context, user entities.User, billID, comment string) (entities.Bill, error)
		status entities.BillStatus
	}{
		{name: "accept", call: (*BillReviewUseCase).Accept, status: entities.BillStatusAccepted},
		{name: "refuse", call: (*BillReviewUseCase).Refuse, status: entities.BillStatusRefused},
	}

	for _, tc := range cases {
		t.Run(tc.name+" requires an admin", func(t *testing.T) {
			uc := NewBillReviewUseCase(nil)
			_, err := tc.call(uc, context.Background(), employee, "bill-1", "")
			if !errors.Is(err, ErrReviewForbidden) {
				t.Fatalf("expected ErrReviewForbidden, got %v", err)
			}
		})

		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc := NewBillReviewUseCase(nil)
			_, err := tc.call(uc, context.Background(), admin, "   ", "")
			if !errors.Is(err, ErrInvalidBillID) {
				t.Fatalf("expected ErrInvalidBillID, got %v", err)
			}
		})

		t.Run(tc.name+" repo error", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBillRepository(ctrl)
			uc := NewBillReviewUseCase(repo)
			repo.EXPECT().UpdateReview(gomock.Any(), "bill-1", tc.status, "").Return(entities.Bill{}, entities.NewStoreError(500))

			_, err := tc.call(uc, context.Background(), admin, "bill-1", "")
			if err == nil || err.Error() != "Erreur 500" {
				t.Fatalf("expected Erreur 500, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBillRepository(ctrl)
			uc := NewBillReviewUseCase(repo)
			repo.EXPECT().UpdateReview(gomock.Any(), "bill-1", tc.status, "").Return(entities.Bill{}, nil)

			_, err := tc.call(uc, context.Background(), admin, "bill-1", "")
			if !errors.Is(err, ErrBillNotFound) {
				t.Fatalf("expected ErrBillNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBillRepository(ctrl)
			uc := NewBillReviewUseCase(repo)
			expected := entities.Bill{ID: "bill-1", Status: tc.status, CommentAdmin: "à valider"}
			repo.EXPECT().UpdateReview(gomock.Any(), "bill-1", tc.status, "à valider").Return(expected, nil)

			res, err := tc.call(uc, context.Background(), admin, " bill-1 ", " à valider ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status || res.CommentAdmin != "à valider" {
				t.Fatalf("unexpected result: %+v", res)
			}
		})
	}
}
