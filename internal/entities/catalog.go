package entities

import "time"

type ServiceListing struct {
	ID          string
	Provider    Participant
	Title       string
	Description string
	Category    string
	Price       int64
	PriceType   PriceType
	CreatedAt   time.Time
}

type PriceType string

const (
	PriceFixed        PriceType = "fixed"
	PriceStartingFrom PriceType = "starting-from"
	PriceHourly       PriceType = "hourly"
)

func (t PriceType) String() string {
	return string(t)
}

type Request struct {
	ID          string
	Requester   Participant
	Title       string
	Description string
	Category    string
	BudgetMin   int64
	BudgetMax   int64
	Status      RequestStatusType
	CreatedAt   time.Time
}

type RequestStatusType string

const (
	RequestOpen   RequestStatusType = "open"
	RequestClosed RequestStatusType = "closed"
)

func (t RequestStatusType) String() string {
	return string(t)
}

// Proposal is a provider's bid against an open request. Read-only for the
// order engine: it only seeds new orders, it is never mutated.
type Proposal struct {
	ID              string
	RequestID       string
	Provider        Participant
	ProviderRating  float64
	ProviderReviews int
	Price           int64
	Message         string
	Timeline        string
	CreatedAt       time.Time
}
