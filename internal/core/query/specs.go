package query

import "github.com/realto/plots-api/internal/core/domain"

// Plots: MyPlot and project plot lists. The category is the plot title.
var Plots = Spec[domain.Plot]{
	Category: func(p domain.Plot) string { return p.Title },
	Fields: []func(domain.Plot) string{
		func(p domain.Plot) string { return p.Title },
		func(p domain.Plot) string { return p.Location },
		func(p domain.Plot) string { return p.PlotNumber },
	},
	Filters: domain.PlotFilters,
}

// Projects: the Explore screen, filtered by city.
var Projects = Spec[domain.Project]{
	Category: func(p domain.Project) string { return p.City },
	Fields: []func(domain.Project) string{
		func(p domain.Project) string { return p.Name },
		func(p domain.Project) string { return p.Description },
	},
	Filters: domain.ProjectCities,
}

// Visits: the Bookings screen, filtered by status.
var Visits = Spec[domain.SiteVisit]{
	Category: func(v domain.SiteVisit) string { return string(v.Status) },
	Fields: []func(domain.SiteVisit) string{
		func(v domain.SiteVisit) string { return v.ProjectName },
		func(v domain.SiteVisit) string { return v.PlotNumber },
	},
	Filters: domain.VisitStatusSet,
}

var Wishlist = Spec[domain.WishlistItem]{
	Fields: []func(domain.WishlistItem) string{
		func(w domain.WishlistItem) string { return w.Name },
		func(w domain.WishlistItem) string { return w.Address },
	},
	Filters: []string{All},
}

var SavedLocations = Spec[domain.SavedLocation]{
	Fields: []func(domain.SavedLocation) string{
		func(l domain.SavedLocation) string { return l.Name },
		func(l domain.SavedLocation) string { return l.Address },
	},
	Filters: []string{All},
}
