package request

import (
	"time"

	"cowork-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type QuoteQuery struct {
	Start time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End   time.Time `form:"end" binding:"required,gtefield=Start" time_format:"2006-01-02T15:04:05Z07:00"`
}

type AvailabilityQuery struct {
	Start    time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End      time.Time `form:"end" binding:"required,gtefield=Start" time_format:"2006-01-02T15:04:05Z07:00"`
	Quantity int       `form:"quantity,default=1" binding:"min=1,max=500"`
}

type SetAvailabilityRequest struct {
	Date           string `json:"date" binding:"required,datetime=2006-01-02"`
	AvailableUnits *int   `json:"availableUnits" binding:"required,min=0"`
	IsBlocked      bool   `json:"isBlocked"`
}

// ToInput assumes the request already passed binding, so Date parses.
func (r SetAvailabilityRequest) ToInput(offeringID uuid.UUID) commands.SetAvailabilityInput {
	date, _ := time.Parse(time.DateOnly, r.Date)
	return commands.SetAvailabilityInput{
		OfferingID:     offeringID,
		Date:           date,
		AvailableUnits: *r.AvailableUnits,
		IsBlocked:      r.IsBlocked,
	}
}
