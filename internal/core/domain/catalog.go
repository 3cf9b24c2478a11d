package domain

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat" yaml:"lat"`
	Lng float64 `json:"lng" bson:"lng" yaml:"lng"`
}

// Project is a township or layout that groups plots.
type Project struct {
	ID             string      `json:"id" bson:"_id" yaml:"id"`
	Name           string      `json:"name" bson:"name" yaml:"name"`
	City           string      `json:"city" bson:"city" yaml:"city"`
	Description    string      `json:"description" bson:"description" yaml:"description"`
	ImageURL       string      `json:"image" bson:"image" yaml:"image"`
	Rating         float64     `json:"rating" bson:"rating" yaml:"rating"`
	PlotsAvailable int         `json:"plots_available" bson:"plots_available" yaml:"plots_available"`
	PriceRange     string      `json:"price_range" bson:"price_range" yaml:"price_range"`
	Amenities      []string    `json:"amenities" bson:"amenities" yaml:"amenities"`
	Featured       bool        `json:"featured" bson:"featured" yaml:"featured"`
	Site           Coordinates `json:"site" bson:"site" yaml:"site"`
}

// Plot is a single parcel. OwnerID is empty for unsold plots.
type Plot struct {
	ID            string `json:"id" bson:"_id" yaml:"id"`
	ProjectID     string `json:"project_id" bson:"project_id" yaml:"project_id"`
	ProjectName   string `json:"project_name" bson:"project_name" yaml:"project_name"`
	OwnerID       string `json:"owner_id,omitempty" bson:"owner_id,omitempty" yaml:"owner_id"`
	Title         string `json:"title" bson:"title" yaml:"title"`
	Location      string `json:"location" bson:"location" yaml:"location"`
	PlotNumber    string `json:"plot_number" bson:"plot_number" yaml:"plot_number"`
	Area          string `json:"area" bson:"area" yaml:"area"`
	PurchaseDate  string `json:"purchase_date,omitempty" bson:"purchase_date,omitempty" yaml:"purchase_date"`
	Status        string `json:"status,omitempty" bson:"status,omitempty" yaml:"status"`
	ValueEstimate string `json:"value_estimate,omitempty" bson:"value_estimate,omitempty" yaml:"value_estimate"`
	ThumbnailURL  string `json:"thumbnail_url,omitempty" bson:"thumbnail_url,omitempty" yaml:"thumbnail_url"`
}

// Enumerated filter sets shown as pills in the app. Each starts with the
// "All" sentinel.
var (
	PlotFilters    = []string{"All", "Residential", "Commercial", "Farm Land"}
	ProjectCities  = []string{"All", "Chennai", "Bangalore", "Hyderabad", "Kochi", "Coimbatore"}
	VisitStatusSet = []string{"All", string(VisitUpcoming), string(VisitCompleted), string(VisitCancelled)}
)
