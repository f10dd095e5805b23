package response

import (
	"malharia_pdv/internal/domain/entities"
	"malharia_pdv/internal/usecase"
)

type ArchiveStatsResponse struct {
	TotalArchived     int    `json:"total_archived"`
	ArchivedThisMonth int    `json:"archived_this_month"`
	LastArchivedAt    string `json:"last_archived_at,omitempty"`
}

func FromArchiveStats(s entities.ArchiveStats) ArchiveStatsResponse {
	return ArchiveStatsResponse{
		TotalArchived:     s.TotalArchived,
		ArchivedThisMonth: s.ArchivedThisMonth,
		LastArchivedAt:    s.LastArchivedAt,
	}
}

type SweepReportResponse struct {
	Archived    int `json:"archived"`
	TotalBefore int `json:"total_before"`
	TotalAfter  int `json:"total_after"`
}

func FromSweepReport(r usecase.SweepReport) SweepReportResponse {
	return SweepReportResponse{
		Archived:    r.Archived,
		TotalBefore: r.TotalBefore,
		TotalAfter:  r.TotalAfter,
	}
}
