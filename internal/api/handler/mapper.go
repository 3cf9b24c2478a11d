package handler

import (
	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
)

func toGrantResponse(g *ports.SessionGrant) sessionGrantResponse {
	return sessionGrantResponse{
		InstanceID: g.Session.InstanceID,
		Session:    g.Session,
		Token:      g.Token,
		Route:      g.Route,
	}
}

func toVisitResponse(v *domain.SiteVisit) visitResponse {
	return visitResponse{SiteVisit: v, QRRoute: v.QRRoute()}
}

func toVisitResponses(vs []domain.SiteVisit) []visitResponse {
	out := make([]visitResponse, 0, len(vs))
	for i := range vs {
		out = append(out, toVisitResponse(&vs[i]))
	}
	return out
}

func newList[T any](items []T) listResponse {
	if items == nil {
		items = []T{}
	}
	return listResponse{Items: items, Count: len(items)}
}
