package service

import (
	"context"
	"errors"
	"testing"

	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/query"
)

func TestCatalogService_ListOwnedPlots(t *testing.T) {
	plots, projects := catalogFixture()
	svc := NewCatalogService(plots, projects, discardLogger)
	ctx := context.Background()

	tests := []struct {
		name string
		q    query.Query
		want []string
	}{
		{name: "all", q: query.Query{}, want: []string{"1", "2"}},
		{name: "term on title", q: query.Query{Term: "villa"}, want: []string{"1"}},
		{name: "term on plot number", q: query.Query{Term: "c-45"}, want: []string{"2"}},
		{name: "filter commercial", q: query.Query{Filter: "Commercial"}, want: []string{"2"}},
		{name: "filter and term disagree", q: query.Query{Term: "villa", Filter: "Commercial"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListOwnedPlots(ctx, "client-001", tt.q)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %d plots", tt.want, len(got))
			}
			for i := range got {
				if got[i].ID != tt.want[i] {
					t.Errorf("position %d: expected %s, got %s", i, tt.want[i], got[i].ID)
				}
			}
		})
	}
}

func TestCatalogService_UnknownFilter(t *testing.T) {
	plots, projects := catalogFixture()
	svc := NewCatalogService(plots, projects, discardLogger)

	if _, err := svc.ListOwnedPlots(context.Background(), "client-001", query.Query{Filter: "Castle"}); !errors.Is(err, query.ErrUnknownFilter) {
		t.Fatalf("expected ErrUnknownFilter, got %v", err)
	}
}

func TestCatalogService_ListProjects(t *testing.T) {
	plots, projects := catalogFixture()
	svc := NewCatalogService(plots, projects, discardLogger)

	got, err := svc.ListProjects(context.Background(), query.Query{Filter: "Bangalore"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("expected [p2], got %+v", got)
	}
}

func TestCatalogService_ListProjectPlots(t *testing.T) {
	plots, projects := catalogFixture()
	svc := NewCatalogService(plots, projects, discardLogger)
	ctx := context.Background()

	got, err := svc.ListProjectPlots(ctx, "p1", query.Query{Filter: "Residential"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected [3], got %+v", got)
	}

	if _, err := svc.ListProjectPlots(ctx, "nope", query.Query{}); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestCatalogService_RepositoryError(t *testing.T) {
	plots, projects := catalogFixture()
	plots.listErr = errBoom
	svc := NewCatalogService(plots, projects, discardLogger)

	if _, err := svc.ListOwnedPlots(context.Background(), "client-001", query.Query{}); !errors.Is(err, errBoom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
