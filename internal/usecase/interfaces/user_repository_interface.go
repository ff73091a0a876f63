package interfaces

import (
	"billed_service/internal/domain/entities"
	"context"
)

// IUserRepository is the read-only lookup of the authenticated-user record.
//
// A missing user resolves to the zero User, not an error; the auth middleware
// decides what to do with it.
type IUserRepository interface {
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}
