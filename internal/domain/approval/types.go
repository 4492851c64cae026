package approval

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type RequestType string

const (
	TypePriceChange        RequestType = "price_change"
	TypeCapacityChange     RequestType = "capacity_change"
	TypeAvailabilityChange RequestType = "availability_change"
	TypeServiceAddition    RequestType = "service_addition"
	TypeServiceRemoval     RequestType = "service_removal"
)

func (t RequestType) String() string {
	return string(t)
}

func (t RequestType) IsValid() bool {
	switch t {
	case TypePriceChange, TypeCapacityChange, TypeAvailabilityChange, TypeServiceAddition, TypeServiceRemoval:
		return true
	default:
		return false
	}
}

func NewRequestType(s string) (RequestType, error) {
	t := RequestType(s)
	if !t.IsValid() {
		return "", ErrInvalidRequestType
	}
	return t, nil
}
