package geocache

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/svillors/star-burger/geo"
	"github.com/svillors/star-burger/models"
)

// PlaceStore is the persistent tier of the cache.
type PlaceStore interface {
	GetByAddress(address string) (*models.Place, error)
	Upsert(place *models.Place) error
	DeleteByAddress(address string) error
}

// Geocoder resolves addresses the cache has never seen.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (geo.Point, error)
}

type hotTier interface {
	Get(ctx context.Context, address string) (geo.Point, bool, error)
	Set(ctx context.Context, address string, point geo.Point) error
	Delete(ctx context.Context, address string) error
}

// Resolver turns a free-text address into coordinates, going through
// the redis hot tier, then the places table, and only then the
// external geocoder. Addresses are keyed on the exact string.
type Resolver struct {
	store    PlaceStore
	geocoder Geocoder
	hot      hotTier
}

// NewResolver builds a resolver. hot may be nil, which disables the
// redis tier.
func NewResolver(store PlaceStore, geocoder Geocoder, hot *HotCache) *Resolver {
	r := &Resolver{
		store:    store,
		geocoder: geocoder,
	}
	if hot != nil {
		r.hot = hot
	}
	return r
}

// Resolve returns the coordinates for address, issuing at most one
// external geocoding call for an address already stored in any tier.
// Redis failures degrade to the persistent tier, never fail the lookup.
func (r *Resolver) Resolve(ctx context.Context, address string) (geo.Point, error) {
	if r.hot != nil {
		point, ok, err := r.hot.Get(ctx, address)
		if err != nil {
			logrus.WithError(err).WithField("address", address).Warn("hot cache read failed")
		} else if ok {
			return point, nil
		}
	}

	place, err := r.store.GetByAddress(address)
	if err == nil {
		point := geo.Point{Lat: place.Latitude, Lng: place.Longitude}
		r.warm(ctx, address, point)
		return point, nil
	}
	if !errors.Is(err, models.ErrPlaceNotFound) {
		return geo.Point{}, err
	}

	point, err := r.geocoder.Geocode(ctx, address)
	if err != nil {
		return geo.Point{}, err
	}

	if err := r.store.Upsert(&models.Place{
		Address:   address,
		Longitude: point.Lng,
		Latitude:  point.Lat,
	}); err != nil {
		return geo.Point{}, err
	}
	r.warm(ctx, address, point)

	return point, nil
}

// Invalidate drops an address from both tiers so the next lookup
// re-geocodes it.
func (r *Resolver) Invalidate(ctx context.Context, address string) error {
	if r.hot != nil {
		if err := r.hot.Delete(ctx, address); err != nil {
			logrus.WithError(err).WithField("address", address).Warn("hot cache delete failed")
		}
	}
	return r.store.DeleteByAddress(address)
}

func (r *Resolver) warm(ctx context.Context, address string, point geo.Point) {
	if r.hot == nil {
		return
	}
	if err := r.hot.Set(ctx, address, point); err != nil {
		logrus.WithError(err).WithField("address", address).Warn("hot cache write failed")
	}
}
