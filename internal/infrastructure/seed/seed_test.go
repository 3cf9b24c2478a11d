package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/realto/plots-api/internal/core/domain"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("embedded catalog: %v", err)
	}
	if len(c.Projects) == 0 || len(c.Plots) == 0 {
		t.Fatalf("empty catalog: %d projects, %d plots", len(c.Projects), len(c.Plots))
	}

	owned := 0
	for _, p := range c.Plots {
		if p.OwnerID == "client-001" {
			owned++
		}
	}
	if owned != 3 {
		t.Errorf("expected 3 plots for the demo client, got %d", owned)
	}

	if len(c.SavedLocations) != 2 || c.SavedLocations[0].ID != "1" || c.SavedLocations[1].Name != "Modern Villa" {
		t.Errorf("unexpected saved location defaults: %+v", c.SavedLocations)
	}
	if c.Wishlist == nil {
		t.Error("wishlist defaults must be an empty list, not nil")
	}
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "duplicate project",
			doc:  "projects:\n  - id: \"1\"\n  - id: \"1\"\n",
		},
		{
			name: "dangling plot",
			doc:  "projects:\n  - id: \"1\"\nplots:\n  - id: a\n    project_id: \"9\"\n",
		},
		{
			name: "unknown field",
			doc:  "projects:\n  - id: \"1\"\n    colour: green\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.doc)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

type upsertRecorder struct {
	projects []string
	plots    []string
	err      error
}

func (r *upsertRecorder) FindByID(context.Context, string) (*domain.Project, error) {
	return nil, domain.ErrProjectNotFound
}
func (r *upsertRecorder) List(context.Context) ([]domain.Project, error) { return nil, nil }
func (r *upsertRecorder) Upsert(_ context.Context, p *domain.Project) error {
	r.projects = append(r.projects, p.ID)
	return r.err
}

type plotRecorder struct {
	ids []string
}

func (r *plotRecorder) FindByID(context.Context, string) (*domain.Plot, error) {
	return nil, domain.ErrPlotNotFound
}
func (r *plotRecorder) ListByOwner(context.Context, string) ([]domain.Plot, error)   { return nil, nil }
func (r *plotRecorder) ListByProject(context.Context, string) ([]domain.Plot, error) { return nil, nil }
func (r *plotRecorder) Upsert(_ context.Context, p *domain.Plot) error {
	r.ids = append(r.ids, p.ID)
	return nil
}

func TestApply(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	projects := &upsertRecorder{}
	plots := &plotRecorder{}

	if err := Apply(context.Background(), c, projects, plots, zerolog.Nop()); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(projects.projects) != len(c.Projects) || len(plots.ids) != len(c.Plots) {
		t.Fatalf("not every record upserted: %d/%d projects, %d/%d plots",
			len(projects.projects), len(c.Projects), len(plots.ids), len(c.Plots))
	}
}

func TestApply_StopsOnError(t *testing.T) {
	c, _ := Default()
	boom := errors.New("boom")
	projects := &upsertRecorder{err: boom}
	plots := &plotRecorder{}

	if err := Apply(context.Background(), c, projects, plots, zerolog.Nop()); !errors.Is(err, boom) {
		t.Fatalf("expected upsert error, got %v", err)
	}
	if len(plots.ids) != 0 {
		t.Fatalf("plots must not be seeded after a project failure")
	}
}
