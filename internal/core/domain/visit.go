package domain

import "time"

// VisitStatus represents the lifecycle state of a site visit.
type VisitStatus string

const (
	VisitUpcoming  VisitStatus = "Upcoming"
	VisitCompleted VisitStatus = "Completed"
	VisitCancelled VisitStatus = "Cancelled"
)

var visitTransitions = map[VisitStatus][]VisitStatus{
	VisitUpcoming: {VisitCompleted, VisitCancelled},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s VisitStatus) CanTransitionTo(next VisitStatus) bool {
	for _, allowed := range visitTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Feedback is left by the guest after a completed visit.
type Feedback struct {
	Rating               int       `json:"rating" bson:"rating"`
	Experience           string    `json:"experience,omitempty" bson:"experience,omitempty"`
	Suggestions          string    `json:"suggestions,omitempty" bson:"suggestions,omitempty"`
	InterestedInPurchase *bool     `json:"interested_in_purchase,omitempty" bson:"interested_in_purchase,omitempty"`
	SubmittedAt          time.Time `json:"submitted_at" bson:"submitted_at"`
}

// SiteVisit is a booked visit to a plot.
type SiteVisit struct {
	ID          string      `json:"id" bson:"_id"`
	PlotID      string      `json:"plot_id" bson:"plot_id"`
	ProjectName string      `json:"project_name" bson:"project_name"`
	PlotNumber  string      `json:"plot_number" bson:"plot_number"`
	VisitorID   string      `json:"visitor_id" bson:"visitor_id"`
	Name        string      `json:"name" bson:"name"`
	Email       string      `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string      `json:"phone" bson:"phone"`
	Date        string      `json:"date" bson:"date"` // YYYY-MM-DD
	TimeSlot    string      `json:"time_slot" bson:"time_slot"`
	Message     string      `json:"message,omitempty" bson:"message,omitempty"`
	Status      VisitStatus `json:"status" bson:"status"`
	Approved    bool        `json:"approved" bson:"approved"`
	ApprovedBy  string      `json:"approved_by,omitempty" bson:"approved_by,omitempty"`
	Feedback    *Feedback   `json:"feedback,omitempty" bson:"feedback,omitempty"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`
}

// QRRoute is the screen that renders the entry pass for the visit.
func (v *SiteVisit) QRRoute() string { return "/qr/" + v.ID }
