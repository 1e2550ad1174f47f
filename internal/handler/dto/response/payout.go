package response

import (
	"time"

	"tembea/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ListingEarningsResponse struct {
	ListingID    uuid.UUID `json:"listingId"`
	ListingName  string    `json:"listingName"`
	GrossCents   int64     `json:"grossCents"`
	BookingCount int64     `json:"bookingCount"`
}

type PayoutSummaryResponse struct {
	HostID         uuid.UUID                  `json:"hostId"`
	GrossCents     int64                      `json:"grossCents"`
	BookingCount   int64                      `json:"bookingCount"`
	RefundDueCount int64                      `json:"refundDueCount"`
	PerListing     []*ListingEarningsResponse `json:"perListing"`
}

type CommissionRowResponse struct {
	ID                 uuid.UUID `json:"id"`
	BookingID          uuid.UUID `json:"bookingId"`
	CommissionType     string    `json:"commissionType"`
	AmountCents        int64     `json:"amountCents"`
	BookingAmountCents int64     `json:"bookingAmountCents"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

type CommissionReportResponse struct {
	ReferrerID   uuid.UUID                `json:"referrerId"`
	Rows         []*CommissionRowResponse `json:"rows"`
	TotalCents   int64                    `json:"totalCents"`
	PendingCents int64                    `json:"pendingCents"`
	PaidCents    int64                    `json:"paidCents"`
}

func FromPayoutSummary(rm *queries.PayoutSummary) *PayoutSummaryResponse {
	resp := &PayoutSummaryResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromCommissionReport(rm *queries.CommissionReport) *CommissionReportResponse {
	resp := &CommissionReportResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}
