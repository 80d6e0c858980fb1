package domain

import "github.com/paulmach/osm"

// OverpassElement - элемент ответа Overpass API (out center tags)
type OverpassElement struct {
	Type   osm.Type
	ID     int64
	Lat    float64
	Lon    float64
	Center *Coordinate
	Tags   osm.Tags
}

// Position возвращает представительную координату элемента:
// для node - собственные lat/lon, для way/relation - center.
// Нулевые значения считаются отсутствующими.
func (e OverpassElement) Position() (Coordinate, bool) {
	var pos Coordinate
	if e.Type == osm.TypeNode {
		pos = Coordinate{Lat: e.Lat, Lon: e.Lon}
	} else if e.Center != nil {
		pos = *e.Center
	}

	if pos.Lat == 0 || pos.Lon == 0 || !pos.Valid() {
		return Coordinate{}, false
	}
	return pos, true
}

// Key - ключ дедупликации элемента
func (e OverpassElement) Key() string {
	return ElementKey(e.Type, e.ID)
}
