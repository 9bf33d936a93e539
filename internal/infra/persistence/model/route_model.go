package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
)

// routeSRID is the spatial reference for all stored geometries (WGS 84).
const routeSRID = 4326

// GeoLineString maps an orb.LineString onto a PostGIS geography column using
// EWKB on the wire. A nil/empty line string is stored as SQL NULL.
type GeoLineString struct {
	LineString orb.LineString
}

// Value implements driver.Valuer.
func (g GeoLineString) Value() (driver.Value, error) {
	if len(g.LineString) == 0 {
		return nil, nil
	}

	return ewkb.Value(g.LineString, routeSRID).Value()
}

// Scan implements sql.Scanner.
func (g *GeoLineString) Scan(src any) error {
	if src == nil {
		g.LineString = nil

		return nil
	}

	return ewkb.Scanner(&g.LineString).Scan(src)
}

// RouteModel is the GORM-specific struct for the 'routes' table.
// The geometry column is a geography(LineString,4326); proximity queries
// go through raw SQL with PostGIS functions (ST_DWithin, ST_Distance).
type RouteModel struct {
	ID             uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CreatorID      string        `gorm:"type:text;not null;index"`
	Name           string        `gorm:"type:varchar(150);not null"`
	DistanceKm     *float64      `gorm:"type:decimal(10,3)"`
	EstTimeMin     *int          `gorm:"type:integer"`
	AvgRating      float64       `gorm:"type:decimal(3,2);not null;default:0"`
	CompletedCount int           `gorm:"not null;default:0"`
	Score          int           `gorm:"not null;default:0"`
	Geometry       GeoLineString `gorm:"type:geography(LineString,4326);index:idx_routes_geometry,type:gist"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteModel) TableName() string {
	return "routes"
}
