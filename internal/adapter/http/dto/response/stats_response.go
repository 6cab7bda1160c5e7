package response

import "vizinhanca-ativa/internal/usecase"

type SindicoStatsResponse struct {
	ActiveCount            int `json:"active_count"`
	TotalProposalsReceived int `json:"total_proposals_received"`
	InProgressCount        int `json:"in_progress_count"`
}

type PrestadorStatsResponse struct {
	ProposalsSent      int `json:"proposals_sent"`
	ProposalsAccepted  int `json:"proposals_accepted"`
	SupportedCampaigns int `json:"supported_campaigns"`
}

// StatsResponse carries exactly one of the role aggregates.
type StatsResponse struct {
	Role      string                  `json:"role"`
	Sindico   *SindicoStatsResponse   `json:"sindico,omitempty"`
	Prestador *PrestadorStatsResponse `json:"prestador,omitempty"`
}

func FromDemandStats(s usecase.DemandStats) StatsResponse {
	resp := StatsResponse{Role: string(s.Role)}
	if s.Sindico != nil {
		resp.Sindico = &SindicoStatsResponse{
			ActiveCount:            s.Sindico.ActiveCount,
			TotalProposalsReceived: s.Sindico.TotalProposalsReceived,
			InProgressCount:        s.Sindico.InProgressCount,
		}
	}
	if s.Prestador != nil {
		resp.Prestador = &PrestadorStatsResponse{
			ProposalsSent:      s.Prestador.ProposalsSent,
			ProposalsAccepted:  s.Prestador.ProposalsAccepted,
			SupportedCampaigns: s.Prestador.SupportedCampaigns,
		}
	}
	return resp
}
