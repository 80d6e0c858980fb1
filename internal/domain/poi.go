package domain

import (
	"fmt"

	"github.com/paulmach/osm"
)

// Pharmacy - найденная точка интереса (аптека) с расстоянием до центра поиска
type Pharmacy struct {
	Name             string
	Lat              float64
	Lon              float64
	DistanceM        float64
	AddressTags      osm.Tags
	FormattedAddress string
	Phone            string
	Email            string
	Website          string
	OpeningHours     string
	OSMType          osm.Type
	OSMID            int64
}

// IdentityKey - ключ дедупликации (type/id)
func (p Pharmacy) IdentityKey() string {
	return ElementKey(p.OSMType, p.OSMID)
}

// ElementKey формирует ключ "type/id"
func ElementKey(t osm.Type, id int64) string {
	return fmt.Sprintf("%s/%d", t, id)
}

// AmenityQuery - параметры запроса к Overpass
type AmenityQuery struct {
	Amenity string
	Center  Coordinate
	RadiusM int
	// AnyOfTags - элемент должен иметь хотя бы один из этих ключей; пусто - без фильтра
	AnyOfTags []string
}
