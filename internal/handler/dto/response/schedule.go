package response

import (
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type UnavailableRangeResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

func FromUnavailableRangeRMs(rms []*readmodel.UnavailableRangeRM) []*UnavailableRangeResponse {
	out := make([]*UnavailableRangeResponse, 0, len(rms))
	_ = copier.Copy(&out, rms)
	return out
}

func FromUnavailableRanges(ranges []schedule.UnavailableRange) []*UnavailableRangeResponse {
	out := make([]*UnavailableRangeResponse, len(ranges))
	for i, r := range ranges {
		out[i] = &UnavailableRangeResponse{
			ID:        r.ID(),
			Date:      r.Date().String(),
			StartTime: r.Slot().Start().String(),
			EndTime:   r.Slot().End().String(),
			Status:    r.Status(),
		}
	}
	return out
}
