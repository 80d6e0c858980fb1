package overpass

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/osm"
	"github.com/pharmacy-locator/internal/domain"
)

// elementTypes - типы OSM, которые запрашиваются отдельно внутри одного batched запроса
var elementTypes = []osm.Type{osm.TypeNode, osm.TypeWay, osm.TypeRelation}

// BuildAroundQuery строит Overpass QL: amenity в радиусе от точки,
// опционально с фильтром "есть хотя бы один из тегов" (union по ключам).
func BuildAroundQuery(q domain.AmenityQuery, timeout time.Duration) string {
	around := fmt.Sprintf("(around:%d,%s,%s);",
		q.RadiusM,
		strconv.FormatFloat(q.Center.Lat, 'f', -1, 64),
		strconv.FormatFloat(q.Center.Lon, 'f', -1, 64),
	)
	amenity := fmt.Sprintf(`["amenity"="%s"]`, escape(q.Amenity))

	var statements []string
	if len(q.AnyOfTags) == 0 {
		for _, t := range elementTypes {
			statements = append(statements, string(t)+amenity+around)
		}
	} else {
		for _, key := range q.AnyOfTags {
			for _, t := range elementTypes {
				statements = append(statements, fmt.Sprintf(`%s%s["%s"]%s`, t, amenity, escape(key), around))
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n(\n", int(timeout.Seconds()))
	for _, s := range statements {
		b.WriteString("  ")
		b.WriteString(s)
		b.WriteString("\n")
	}
	b.WriteString(");\nout center tags;")

	return b.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
