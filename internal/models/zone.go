package models

import (
	"time"

	"github.com/murefu/geo_status_engine/internal/geometry"
)

// ZoneKind - тип зоны
type ZoneKind string

const (
	ZoneKindNeighborhood ZoneKind = "neighborhood"
	ZoneKindWaterArea    ZoneKind = "water_distribution_area"
	ZoneKindOther        ZoneKind = "other"
)

// Zone представляет именованную географическую зону (полигон или опорную точку).
// Геометрия хранится как один контур в формате GeoJSON: [[lon, lat], ...].
// У вырожденной зоны (без нарисованной границы) Ring == nil, а координаты
// опорной точки лежат в RefLongitude/RefLatitude.
type Zone struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Kind         ZoneKind      `json:"kind"`
	Ring         geometry.Ring `json:"ring,omitempty"`
	RefLongitude *float64      `json:"ref_longitude,omitempty"`
	RefLatitude  *float64      `json:"ref_latitude,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// HasBoundary сообщает, можно ли использовать зону как цель геофенсинга.
// Вырожденные зоны служат только отображаемыми метаданными.
func (z *Zone) HasBoundary() bool {
	return z.Ring.Valid()
}
