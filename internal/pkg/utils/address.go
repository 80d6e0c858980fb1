package utils

import (
	"fmt"
	"strings"

	"github.com/paulmach/osm"
)

var (
	structuredAddressKeys = []string{"addr:street", "addr:housenumber", "addr:city", "addr:postcode", "addr:country"}
	fallbackAddressKeys   = []string{"street", "city", "village", "town"}
)

// FormatAddress собирает читаемый адрес из OSM тегов.
// Сначала addr:* в фиксированном порядке, если их нет - street/city/village/town.
// Пустая строка, если ничего не найдено.
func FormatAddress(tags osm.Tags) string {
	if len(tags) == 0 {
		return ""
	}

	parts := collect(tags, structuredAddressKeys)
	if len(parts) == 0 {
		parts = collect(tags, fallbackAddressKeys)
	}

	return strings.Join(parts, ", ")
}

func collect(tags osm.Tags, keys []string) []string {
	var parts []string
	for _, key := range keys {
		if v := tags.Find(key); v != "" {
			parts = append(parts, v)
		}
	}
	return parts
}

// FormatTags - отображение "key:value, key:value" для сырых тегов адреса
func FormatTags(tags osm.Tags) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, fmt.Sprintf("%s:%s", tag.Key, tag.Value))
	}
	return strings.Join(parts, ", ")
}
