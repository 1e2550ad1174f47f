package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	// PaymentCompleted means the gateway has settled the funds. Both paid
	// and completed bookings accrue payout balances.
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (p PaymentStatus) String() string {
	return string(p)
}

// Terminal payment states can never be altered by a later callback.
func (p PaymentStatus) Terminal() bool {
	switch p {
	case PaymentPaid, PaymentCompleted, PaymentFailed:
		return true
	default:
		return false
	}
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentCompleted, PaymentFailed:
		return true
	default:
		return false
	}
}

type Method string

const (
	MethodMpesa Method = "mpesa"
	// MethodManualEntry marks host-entered offline bookings. They are paid
	// outside the platform and never accrue payout balances.
	MethodManualEntry Method = "manual_entry"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodMpesa, MethodManualEntry:
		return true
	default:
		return false
	}
}
