package assignment

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/svillors/star-burger/geo"
	"github.com/svillors/star-burger/models"
)

// CoordinateResolver yields coordinates for a free-text address.
type CoordinateResolver interface {
	Resolve(ctx context.Context, address string) (geo.Point, error)
}

// RankedRestaurant is one row of the dashboard's candidate list for an
// order.
type RankedRestaurant struct {
	Name     string
	Distance geo.Distance
}

// Assigner computes the ranked candidate list attached to each open
// order on the dashboard.
type Assigner struct {
	resolver CoordinateResolver
}

func NewAssigner(resolver CoordinateResolver) *Assigner {
	return &Assigner{
		resolver: resolver,
	}
}

// Assign ranks the restaurants able to fulfill the order by distance
// from its delivery address. Geocoding failures never abort: a failed
// restaurant address gets an unknown distance and sorts last, a failed
// order address degrades every candidate to unknown.
func (a *Assigner) Assign(ctx context.Context, order models.Order) []RankedRestaurant {
	candidates := Candidates(order)

	orderPoint, err := a.resolver.Resolve(ctx, order.Address)
	orderKnown := err == nil
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"order_id": order.ID,
			"address":  order.Address,
		}).Warn("could not geocode order address")
	}

	ranked := make([]RankedRestaurant, 0, len(candidates))
	for _, restaurant := range candidates {
		distance := geo.Unknown()
		if orderKnown {
			point, err := a.resolver.Resolve(ctx, restaurant.Address)
			if err == nil {
				distance = geo.Resolved(point.HaversineDistance(orderPoint))
			} else {
				logrus.WithError(err).WithFields(logrus.Fields{
					"restaurant": restaurant.Name,
					"address":    restaurant.Address,
				}).Warn("could not geocode restaurant address")
			}
		}
		ranked = append(ranked, RankedRestaurant{
			Name:     restaurant.Name,
			Distance: distance,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance.Less(ranked[j].Distance)
	})
	return ranked
}
