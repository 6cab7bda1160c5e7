package interfaces

import (
	"context"

	"vizinhanca-ativa/internal/domain/entities"
)

// IUserRepository abstracts the identity & profile store.
//
// The lifecycle engines read it to enrich proposals and supporter listings
// with provider names and reputation. Only the profile endpoints write.
type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	Upsert(ctx context.Context, u entities.User) (entities.User, error)
	ListByType(ctx context.Context, role entities.UserRole) ([]entities.User, error)
}
