package dto

import (
	"strings"

	"github.com/pharmacy-locator/internal/domain"
)

const (
	StatusOK    = "ok"
	StatusError = "error"

	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// LocatorRequest - запрос на поиск ближайших аптек.
// Локация берётся из location, затем city, затем query.
type LocatorRequest struct {
	Situation string `json:"situation"`
	Location  string `json:"location"`
	City      string `json:"city"`
	Query     string `json:"query"`
	RadiusM   int    `json:"radius_m" validate:"omitempty,min=1,max=100000"`
	Limit     int    `json:"limit" validate:"omitempty,min=1,max=50"`
	Format    string `json:"format" validate:"omitempty,oneof=json pretty"`
}

// LocationText возвращает первую непустую локацию из location/city/query
func (r *LocatorRequest) LocationText() string {
	for _, s := range []string{r.Location, r.City, r.Query} {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// Normalize приводит format к нижнему регистру, пустой format - json
func (r *LocatorRequest) Normalize() {
	r.Format = strings.ToLower(strings.TrimSpace(r.Format))
	if r.Format == "" {
		r.Format = FormatJSON
	}
}

// LocatorResponse - envelope ответа
type LocatorResponse struct {
	Status        string           `json:"status"`
	Message       string           `json:"message,omitempty"`
	Provider      string           `json:"provider,omitempty"`
	QueryLocation *QueryLocation   `json:"query_location,omitempty"`
	Situation     string           `json:"situation,omitempty"`
	Results       []PharmacyResult `json:"results"`
}

// QueryLocation - эхо входной локации и результат геокодирования
type QueryLocation struct {
	Input      string                 `json:"input"`
	Lat        float64                `json:"lat"`
	Lon        float64                `json:"lon"`
	RawGeocode map[string]interface{} `json:"raw_geocode"`
	Geocoder   string                 `json:"geocoder,omitempty"`
	Cached     bool                   `json:"cached"`
}

// PharmacyResult - найденная аптека
type PharmacyResult struct {
	Name             string            `json:"name"`
	Lat              float64           `json:"lat"`
	Lon              float64           `json:"lon"`
	DistanceM        float64           `json:"distance_m"`
	AddressTags      map[string]string `json:"address_tags"`
	FormattedAddress string            `json:"formatted_address"`
	Phone            *string           `json:"phone"`
	Email            *string           `json:"email"`
	Website          *string           `json:"website"`
	OpeningHours     *string           `json:"opening_hours"`
	OSMType          string            `json:"osm_type"`
	OSMID            int64             `json:"osm_id"`
}

func NewPharmacyResult(p domain.Pharmacy) PharmacyResult {
	addr := p.AddressTags.Map()
	if addr == nil {
		addr = map[string]string{}
	}

	return PharmacyResult{
		Name:             p.Name,
		Lat:              p.Lat,
		Lon:              p.Lon,
		DistanceM:        p.DistanceM,
		AddressTags:      addr,
		FormattedAddress: p.FormattedAddress,
		Phone:            optional(p.Phone),
		Email:            optional(p.Email),
		Website:          optional(p.Website),
		OpeningHours:     optional(p.OpeningHours),
		OSMType:          string(p.OSMType),
		OSMID:            p.OSMID,
	}
}

func NewErrorResponse(message string) *LocatorResponse {
	return &LocatorResponse{
		Status:  StatusError,
		Message: message,
		Results: []PharmacyResult{},
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
