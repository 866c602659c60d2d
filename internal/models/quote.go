package models

import "time"

// PriceBreakdown records every intermediate value of a price estimate
type PriceBreakdown struct {
	BasePrice          float64 `json:"base_price"`
	CapacityMultiplier float64 `json:"capacity_multiplier"`
	RoomSurcharge      float64 `json:"room_surcharge"`
	BuildingFactor     float64 `json:"building_factor"`
	FloorSurcharge     float64 `json:"floor_surcharge"`
	DifficultyFactor   float64 `json:"difficulty_factor"`
	UrgencyFactor      float64 `json:"urgency_factor"`
	Raw                float64 `json:"raw"`
	Total              int     `json:"total"`
}

// Quote is a completed questionnaire handed to the submit channels
type Quote struct {
	ID            string         `json:"id"`
	Answers       AnswerSet      `json:"answers"`
	Price         int            `json:"price"`
	Breakdown     PriceBreakdown `json:"breakdown"`
	CreatedAt     time.Time      `json:"created_at"`
	FollowUpBy    time.Time      `json:"follow_up_by"`    // latest time sales should contact the customer
	FormalQuoteBy time.Time      `json:"formal_quote_by"` // business-day due date for the formal quote
}
