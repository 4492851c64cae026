package response

import (
	"time"

	"cowork-booking/internal/domain/availability"
	"cowork-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	OfferingID uuid.UUID `json:"offeringId"`
	Units      int64     `json:"units"`
	PriceUnit  string    `json:"priceUnit"`
	Total      string    `json:"total"`
	Currency   string    `json:"currency"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		OfferingID: v.OfferingID,
		Units:      v.Units,
		PriceUnit:  v.PriceUnit.String(),
		Total:      v.Total.Amount().StringFixed(3),
		Currency:   v.Total.Currency().String(),
	}
}

type DayResponse struct {
	Date           string `json:"date"`
	AvailableUnits int    `json:"availableUnits"`
	IsBlocked      bool   `json:"isBlocked"`
}

type AvailabilityResponse struct {
	OfferingID uuid.UUID     `json:"offeringId"`
	Quantity   int           `json:"quantity"`
	Available  bool          `json:"available"`
	Days       []DayResponse `json:"days"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	days := make([]DayResponse, len(v.Days))
	for i, d := range v.Days {
		days[i] = DayResponse{
			Date:           d.Date.Format(time.DateOnly),
			AvailableUnits: d.AvailableUnits,
			IsBlocked:      d.IsBlocked,
		}
	}
	return &AvailabilityResponse{
		OfferingID: v.OfferingID,
		Quantity:   v.Quantity,
		Available:  v.Available,
		Days:       days,
	}
}

type AvailabilityRecordResponse struct {
	OfferingID     uuid.UUID `json:"offeringId"`
	Date           string    `json:"date"`
	AvailableUnits int       `json:"availableUnits"`
	IsBlocked      bool      `json:"isBlocked"`
}

func FromAvailabilityRecord(r *availability.Record) *AvailabilityRecordResponse {
	return &AvailabilityRecordResponse{
		OfferingID:     r.OfferingID(),
		Date:           r.Date().Format(time.DateOnly),
		AvailableUnits: r.AvailableUnits(),
		IsBlocked:      r.IsBlocked(),
	}
}
