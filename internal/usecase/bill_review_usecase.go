package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"billed_service/internal/domain/entities"
	"billed_service/internal/usecase/interfaces"
)

var (
	ErrBillNotFound    = errors.New("bill not found")
	ErrInvalidBillID   = errors.New("invalid bill id")
	ErrReviewForbidden = errors.New("review requires an admin user")
)

// IBillReviewUseCase is the admin side of the record shape: accept or refuse
// a submitted bill, optionally annotating it.

type IBillReviewUseCase interface {
	Accept(ctx context.Context, user entities.User, billID string, commentAdmin string) (entities.Bill, error)
	Refuse(ctx context.Context, user entities.User, billID string, commentAdmin string) (entities.Bill, error)
}

type BillReviewUseCase struct {
	repo interfaces.IBillRepository
}

var _ IBillReviewUseCase = (*BillReviewUseCase)(nil)

func NewBillReviewUseCase(repo interfaces.IBillRepository) *BillReviewUseCase {
	return &BillReviewUseCase{repo: repo}
}

func (u *BillReviewUseCase) Accept(ctx context.Context, user entities.User, billID string, commentAdmin string) (entities.Bill, error) {
	return u.review(ctx, user, billID, entities.BillStatusAccepted, commentAdmin)
}

func (u *BillReviewUseCase) Refuse(ctx context.Context, user entities.User, billID string, commentAdmin string) (entities.Bill, error) {
	return u.review(ctx, user, billID, entities.BillStatusRefused, commentAdmin)
}

func (u *BillReviewUseCase) review(ctx context.Context, user entities.User, billID string, status entities.BillStatus, commentAdmin string) (entities.Bill, error) {
	if !user.IsAdmin() {
		return entities.Bill{}, ErrReviewForbidden
	}
	billID = strings.TrimSpace(billID)
	if billID == "" {
		return entities.Bill{}, ErrInvalidBillID
	}

	updated, err := u.repo.UpdateReview(ctx, billID, status, strings.TrimSpace(commentAdmin))
	if err != nil {
		log.Printf("[review][usecase] update failed bill_id=%s err=%v", billID, err)
		return entities.Bill{}, err
	}
	if updated.ID == "" {
		return entities.Bill{}, ErrBillNotFound
	}
	log.Printf("[review][usecase] bill reviewed bill_id=%s status=%s by=%s", billID, status, user.Email)
	return updated, nil
}
