package usecase

import (
	"context"
	"errors"

	"vizinhanca-ativa/internal/domain/entities"
	"vizinhanca-ativa/internal/usecase/interfaces"
)

var ErrUnknownRole = errors.New("unknown actor role")

// SindicoStats is the dashboard aggregate for a condominium manager.
type SindicoStats struct {
	ActiveCount            int `json:"active_count"`
	TotalProposalsReceived int `json:"total_proposals_received"`
	InProgressCount        int `json:"in_progress_count"`
}

// PrestadorStats is the dashboard aggregate for a service provider.
type PrestadorStats struct {
	ProposalsSent      int `json:"proposals_sent"`
	ProposalsAccepted  int `json:"proposals_accepted"`
	SupportedCampaigns int `json:"supported_campaigns"`
}

// DemandStats holds exactly one of the two role aggregates.
type DemandStats struct {
	Role      entities.UserRole `json:"role"`
	Sindico   *SindicoStats     `json:"sindico,omitempty"`
	Prestador *PrestadorStats   `json:"prestador,omitempty"`
}

// IStatsUseCase is the reporting engine: pure derivations over the
// repositories with no persisted state of its own. Empty data yields all-zero
// aggregates, never an error.

type IStatsUseCase interface {
	DemandStats(ctx context.Context, actor entities.Actor) (DemandStats, error)
}

type StatsUseCase struct {
	demands   interfaces.IDemandRepository
	campaigns interfaces.ICampaignRepository
}

var _ IStatsUseCase = (*StatsUseCase)(nil)

func NewStatsUseCase(demands interfaces.IDemandRepository, campaigns interfaces.ICampaignRepository) *StatsUseCase {
	return &StatsUseCase{demands: demands, campaigns: campaigns}
}

func (u *StatsUseCase) DemandStats(ctx context.Context, actor entities.Actor) (DemandStats, error) {
	switch actor.Role {
	case entities.RoleSindico:
		s, err := u.sindicoStats(ctx, actor.ID)
		if err != nil {
			return DemandStats{}, err
		}
		return DemandStats{Role: entities.RoleSindico, Sindico: &s}, nil
	case entities.RolePrestador:
		p, err := u.prestadorStats(ctx, actor.ID)
		if err != nil {
			return DemandStats{}, err
		}
		return DemandStats{Role: entities.RolePrestador, Prestador: &p}, nil
	default:
		return DemandStats{}, ErrUnknownRole
	}
}

func (u *StatsUseCase) sindicoStats(ctx context.Context, userID string) (SindicoStats, error) {
	demands, err := u.demands.List(ctx, interfaces.DemandFilter{OwnerID: userID})
	if err != nil {
		return SindicoStats{}, err
	}

	var stats SindicoStats
	for _, d := range demands {
		switch d.Status {
		case entities.DemandStatusAberto:
			stats.ActiveCount++
		case entities.DemandStatusContratado:
			stats.InProgressCount++
		}
		if d.ProposalsCount > 0 {
			stats.TotalProposalsReceived += d.ProposalsCount
		}
	}
	return stats, nil
}

func (u *StatsUseCase) prestadorStats(ctx context.Context, providerID string) (PrestadorStats, error) {
	proposals, err := u.demands.ListProposalsByProviderID(ctx, providerID)
	if err != nil {
		return PrestadorStats{}, err
	}

	hired, err := u.demands.ListByHiredProviderID(ctx, providerID)
	if err != nil {
		return PrestadorStats{}, err
	}

	supports, err := u.campaigns.ListSupportersByProviderID(ctx, providerID)
	if err != nil {
		return PrestadorStats{}, err
	}

	distinct := make(map[string]struct{}, len(supports))
	for _, s := range supports {
		if s.CampaignID != "" {
			distinct[s.CampaignID] = struct{}{}
		}
	}

	return PrestadorStats{
		ProposalsSent:      len(proposals),
		ProposalsAccepted:  len(hired),
		SupportedCampaigns: len(distinct),
	}, nil
}
