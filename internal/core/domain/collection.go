package domain

// CollectionName identifies a Persisted Collection.
type CollectionName string

const (
	CollectionWishlist       CollectionName = "wishlist"
	CollectionSavedLocations CollectionName = "savedLocations"
)

// ParseCollection maps a path segment to a known collection.
func ParseCollection(s string) (CollectionName, error) {
	switch CollectionName(s) {
	case CollectionWishlist, CollectionSavedLocations:
		return CollectionName(s), nil
	}
	return "", ErrUnknownCollection
}

// WishlistItem is a property the user marked as interesting.
type WishlistItem struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
	Price   string `json:"price" yaml:"price"`
}

func (w WishlistItem) RecordID() string { return w.ID }

// SavedLocation is a pinned property with map coordinates.
type SavedLocation struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Address   string  `json:"address" yaml:"address"`
	Price     string  `json:"price" yaml:"price"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

func (l SavedLocation) RecordID() string { return l.ID }
