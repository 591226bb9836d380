package request

import "studio-booking/internal/usecase/commands"

type UnavailableRangeRequest struct {
	StartTime string `json:"start_time" binding:"required,hhmm"`
	EndTime   string `json:"end_time" binding:"required,hhmm"`
}

// ReplaceUnavailableRequest replaces every range on Date. An empty list
// clears the date.
type ReplaceUnavailableRequest struct {
	Date   string                    `json:"date" binding:"required,civildate"`
	Ranges []UnavailableRangeRequest `json:"ranges" binding:"dive"`
}

func (r ReplaceUnavailableRequest) ToInputs() []commands.RangeInput {
	out := make([]commands.RangeInput, len(r.Ranges))
	for i, rg := range r.Ranges {
		out[i] = commands.RangeInput{StartTime: rg.StartTime, EndTime: rg.EndTime}
	}
	return out
}
