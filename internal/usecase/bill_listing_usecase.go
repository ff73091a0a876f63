package usecase

import (
	"context"
	"log"
	"sort"

	"billed_service/internal/domain/entities"
	"billed_service/internal/usecase/interfaces"
)

// IBillListingUseCase loads the bills view: one FetchAll round trip, scoped
// to the requesting user, ordered most recent first.

type IBillListingUseCase interface {
	Load(ctx context.Context, user entities.User) ([]entities.Bill, error)
}

type BillListingUseCase struct {
	repo interfaces.IBillRepository
}

var _ IBillListingUseCase = (*BillListingUseCase)(nil)

func NewBillListingUseCase(repo interfaces.IBillRepository) *BillListingUseCase {
	return &BillListingUseCase{repo: repo}
}

// Load fetches the collection and orders it by date descending. Admins see
// every bill; employees only their own. The sort is a stable string
// comparison, which is chronological because dates are zero-padded
// YYYY-MM-DD; ties keep their fetch order.
func (u *BillListingUseCase) Load(ctx context.Context, user entities.User) ([]entities.Bill, error) {
	all, err := u.repo.FetchAll(ctx)
	if err != nil {
		log.Printf("[bills][usecase] fetch failed email=%s err=%v", user.Email, err)
		return nil, err
	}

	bills := all
	if !user.IsAdmin() {
		bills = make([]entities.Bill, 0, len(all))
		for _, b := range all {
			if b.Email == user.Email {
				bills = append(bills, b)
			}
		}
	}

	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].Date > bills[j].Date
	})

	log.Printf("[bills][usecase] loaded count=%d email=%s admin=%t", len(bills), user.Email, user.IsAdmin())
	return bills, nil
}
