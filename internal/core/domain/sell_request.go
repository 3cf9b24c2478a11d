package domain

import "time"

// Urgency of a sell request.
const (
	UrgencyLow    = "low"
	UrgencyNormal = "normal"
	UrgencyHigh   = "high"
)

const SellRequestSubmitted = "Submitted"

// SellRequest asks the agency to resell a plot the client owns.
type SellRequest struct {
	ID              string    `json:"id" bson:"_id"`
	PlotID          string    `json:"plot_id" bson:"plot_id"`
	ClientID        string    `json:"client_id" bson:"client_id"`
	AskingPrice     string    `json:"asking_price" bson:"asking_price"`
	Reason          string    `json:"reason,omitempty" bson:"reason,omitempty"`
	Urgency         string    `json:"urgency" bson:"urgency"`
	AgentAssistance bool      `json:"agent_assistance" bson:"agent_assistance"`
	Status          string    `json:"status" bson:"status"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}
