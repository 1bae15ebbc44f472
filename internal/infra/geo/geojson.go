// Package geo renders business locations for map widgets.
package geo

import (
	"housecash/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LocationsFeatureCollection maps each location with coordinates to a Point
// feature. Locations without both coordinates are left out.
func LocationsFeatureCollection(locations []*entity.BusinessLocation) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, location := range locations {
		if !location.HasGeo() {
			continue
		}

		// GeoJSON orders coordinates longitude first.
		feature := geojson.NewFeature(orb.Point{*location.Longitude, *location.Latitude})
		feature.ID = location.ID.String()
		feature.Properties["name"] = location.Name
		feature.Properties["isPrimary"] = location.IsPrimary
		feature.Properties["address"] = location.FullAddress()

		fc.Append(feature)
	}

	return fc
}
