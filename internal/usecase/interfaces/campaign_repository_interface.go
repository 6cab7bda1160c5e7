package interfaces

import (
	"context"

	"vizinhanca-ativa/internal/domain/entities"
)

// ICampaignRepository abstracts DynamoDB persistence for campaigns and their
// supporter contributions.
//
// AddSupporter writes the supporter record and adds its amount to the parent
// campaign's current total in one transaction, so no reader ever observes one
// write without the other.
type ICampaignRepository interface {
	Create(ctx context.Context, c entities.Campaign) (entities.Campaign, error)
	GetByID(ctx context.Context, id string) (entities.Campaign, error)
	List(ctx context.Context) ([]entities.Campaign, error)

	AddSupporter(ctx context.Context, s entities.Supporter) (entities.Supporter, error)
	ListSupportersByCampaignID(ctx context.Context, campaignID string) ([]entities.Supporter, error)
	ListSupportersByProviderID(ctx context.Context, providerID string) ([]entities.Supporter, error)
}
