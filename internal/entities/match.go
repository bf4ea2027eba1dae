package entities

import "github.com/shopspring/decimal"

// MatchingScore is the weighted multi-factor compatibility score of a single
// container/booking pairing. Sub-scores are bounded: distance 0-40, time 0-20,
// complexity 0-15, quality 0-25. Total is their exact sum.
type MatchingScore struct {
	Total      float64
	Distance   float64
	Time       float64
	Complexity float64
	Quality    float64
	Partner    float64
}

// ScoredBooking is one candidate export booking for a container, with its
// score and the estimated savings a street-turn of this pair would realise.
type ScoredBooking struct {
	Booking              ExportBooking
	Score                MatchingScore
	EstimatedCostSaving  decimal.Decimal
	EstimatedCO2SavingKg decimal.Decimal
}

// MatchSuggestion groups the accepted candidates of one import container.
// Derived on demand from current snapshots, never persisted.
type MatchSuggestion struct {
	Container                 ImportContainer
	Candidates                []ScoredBooking
	TotalEstimatedCostSaving  decimal.Decimal
	TotalEstimatedCO2SavingKg decimal.Decimal
}
