package domain

import "time"

// Attendance is a manager's daily check-in at a project site.
type Attendance struct {
	ID        string      `json:"id" bson:"_id"`
	ManagerID string      `json:"manager_id" bson:"manager_id"`
	Day       string      `json:"day" bson:"day"` // YYYY-MM-DD, UTC
	Location  Coordinates `json:"location" bson:"location"`
	ProjectID string      `json:"project_id" bson:"project_id"`
	DistanceM float64     `json:"distance_m" bson:"distance_m"`
	MarkedAt  time.Time   `json:"marked_at" bson:"marked_at"`
}
