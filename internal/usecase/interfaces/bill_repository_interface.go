package interfaces

import (
	"billed_service/internal/domain/entities"
	"context"
)

// IBillRepository abstracts the remote bill store (DynamoDB in production,
// any in-memory fake in tests).
//
// Contract notes:
//   - Create assigns the id and returns the updated collection after the
//     insertion, not just the new record.
//   - Both operations may fail with entities.StoreError; callers surface the
//     message verbatim and never retry automatically.

type IBillRepository interface {
	FetchAll(ctx context.Context) ([]entities.Bill, error)
	Create(ctx context.Context, b entities.Bill) ([]entities.Bill, error)
	UpdateReview(ctx context.Context, id string, status entities.BillStatus, commentAdmin string) (entities.Bill, error)
}
