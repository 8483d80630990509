// Package geojson содержит минимальные типы GeoJSON-ответов движка.
// Движок отдает только точечные фичи с весом; агрегация/кластеризация -
// забота клиента карты или тайлового слоя.
package geojson

// PointGeometry - геометрия точки GeoJSON
type PointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// FeatureProperties - свойства взвешенной точки теплокарты
type FeatureProperties struct {
	Weight   float64 `json:"weight"`
	Category string  `json:"category,omitempty"`
}

// Feature - одна фича GeoJSON
type Feature struct {
	Type       string            `json:"type"`
	Geometry   PointGeometry     `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// FeatureCollection - коллекция фич GeoJSON
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewPointFeature создает взвешенную точечную фичу. Координаты в порядке
// GeoJSON: [longitude, latitude].
func NewPointFeature(lon, lat, weight float64, category string) Feature {
	return Feature{
		Type: "Feature",
		Geometry: PointGeometry{
			Type:        "Point",
			Coordinates: [2]float64{lon, lat},
		},
		Properties: FeatureProperties{
			Weight:   weight,
			Category: category,
		},
	}
}

// NewFeatureCollection создает коллекцию из готовых фич
func NewFeatureCollection(features []Feature) *FeatureCollection {
	if features == nil {
		features = make([]Feature, 0)
	}
	return &FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
