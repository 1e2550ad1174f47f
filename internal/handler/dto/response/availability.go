package response

import (
	"time"

	"tembea/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	ItemID    uuid.UUID `json:"itemId"`
	VisitDate string    `json:"visitDate"`
	Capacity  int32     `json:"capacity"`
	Booked    int32     `json:"booked"`
	Remaining int32     `json:"remaining"`
}

func FromAvailabilityView(rm *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		ItemID:    rm.ItemID,
		VisitDate: rm.VisitDate.Format(time.DateOnly),
		Capacity:  rm.Capacity,
		Booked:    rm.Booked,
		Remaining: rm.Remaining,
	}
}
