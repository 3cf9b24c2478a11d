// Package seed loads the demo catalog shipped with the binary.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the seed document: catalog records plus the defaults every
// new Persisted Collection starts from.
type Catalog struct {
	Projects       []domain.Project       `yaml:"projects"`
	Plots          []domain.Plot          `yaml:"plots"`
	Wishlist       []domain.WishlistItem  `yaml:"wishlist"`
	SavedLocations []domain.SavedLocation `yaml:"saved_locations"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Decode(bytes.NewReader(catalogYAML))
}

// Decode parses and checks a catalog document. Unknown fields are rejected.
func Decode(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	if c.Wishlist == nil {
		c.Wishlist = []domain.WishlistItem{}
	}
	if c.SavedLocations == nil {
		c.SavedLocations = []domain.SavedLocation{}
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	projects := make(map[string]bool, len(c.Projects))
	for _, p := range c.Projects {
		if p.ID == "" || projects[p.ID] {
			return fmt.Errorf("%w: project id %q is empty or repeated", domain.ErrValidation, p.ID)
		}
		projects[p.ID] = true
	}

	plots := make(map[string]bool, len(c.Plots))
	for _, p := range c.Plots {
		if p.ID == "" || plots[p.ID] {
			return fmt.Errorf("%w: plot id %q is empty or repeated", domain.ErrValidation, p.ID)
		}
		if !projects[p.ProjectID] {
			return fmt.Errorf("%w: plot %s references unknown project %q", domain.ErrValidation, p.ID, p.ProjectID)
		}
		plots[p.ID] = true
	}
	return nil
}

// Apply upserts the catalog records. It is safe to run on every start.
func Apply(ctx context.Context, c *Catalog, projects ports.ProjectRepository, plots ports.PlotRepository, log zerolog.Logger) error {
	for i := range c.Projects {
		if err := projects.Upsert(ctx, &c.Projects[i]); err != nil {
			return fmt.Errorf("seed project %s: %w", c.Projects[i].ID, err)
		}
	}
	for i := range c.Plots {
		if err := plots.Upsert(ctx, &c.Plots[i]); err != nil {
			return fmt.Errorf("seed plot %s: %w", c.Plots[i].ID, err)
		}
	}

	log.Info().
		Int("projects", len(c.Projects)).
		Int("plots", len(c.Plots)).
		Msg("catalog seeded")
	return nil
}
