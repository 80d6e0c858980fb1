package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderPretty - текстовое представление успешного ответа для format=pretty
func RenderPretty(resp *LocatorResponse) string {
	var lines []string

	input, lat, lon := "", 0.0, 0.0
	if resp.QueryLocation != nil {
		input, lat, lon = resp.QueryLocation.Input, resp.QueryLocation.Lat, resp.QueryLocation.Lon
	}

	lines = append(lines,
		fmt.Sprintf("Top %d pharmacies near %s (lat=%s, lon=%s)", len(resp.Results), input, formatFloat(lat), formatFloat(lon)),
		"---",
	)

	for i, r := range resp.Results {
		lines = append(lines,
			fmt.Sprintf("%d. %s — %s m", i+1, r.Name, strconv.FormatFloat(r.DistanceM, 'f', 1, 64)),
			"   Address: "+orNA(r.FormattedAddress),
			"   Phone: "+orNA(deref(r.Phone)),
			"   Email: "+orNA(deref(r.Email)),
			"   Website: "+orNA(deref(r.Website)),
			"   Opening: "+orNA(deref(r.OpeningHours)),
			fmt.Sprintf("   Location: %s, %s", formatFloat(r.Lat), formatFloat(r.Lon)),
		)
		if r.OSMType != "" && r.OSMID != 0 {
			lines = append(lines, fmt.Sprintf("   OSM: %s/%d", r.OSMType, r.OSMID))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
