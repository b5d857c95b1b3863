package entities

// Participant is the identity snapshot of one side of an order,
// captured at order creation and immutable afterwards.
type Participant struct {
	ID     string
	Name   string
	Avatar string
}
