package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/paulmach/osm"
	"go.uber.org/zap"

	"github.com/pharmacy-locator/internal/domain"
	"github.com/pharmacy-locator/internal/domain/repository"
	"github.com/pharmacy-locator/internal/pkg/utils"
)

var (
	phoneKeys   = []string{"phone", "contact:phone", "telephone", "tel", "mobile", "contact:mobile"}
	emailKeys   = []string{"email", "contact:email", "e-mail"}
	websiteKeys = []string{"website", "contact:website"}

	addressKeys = map[string]struct{}{
		"postal_code": {},
		"city":        {},
		"village":     {},
		"street":      {},
	}
)

// ContactTagKeys - ключи, наличие любого из которых делает объект "контактным" (tier 1)
func ContactTagKeys() []string {
	keys := make([]string, 0, len(phoneKeys)+len(emailKeys)+len(websiteKeys))
	keys = append(keys, phoneKeys...)
	keys = append(keys, emailKeys...)
	keys = append(keys, websiteKeys...)
	return keys
}

// PharmacySearchUseCase - поиск объектов amenity в радиусе через Overpass в два тура:
// сначала объекты с контактами, затем (если не хватило до limit) все остальные.
type PharmacySearchUseCase struct {
	overpassRepo repository.OverpassRepository
	amenity      string
	fallbackName string
	logger       *zap.Logger
}

// NewPharmacySearchUseCase - создание нового PharmacySearchUseCase
func NewPharmacySearchUseCase(
	overpassRepo repository.OverpassRepository,
	amenity string,
	logger *zap.Logger,
) *PharmacySearchUseCase {
	return &PharmacySearchUseCase{
		overpassRepo: overpassRepo,
		amenity:      amenity,
		fallbackName: displayName(amenity),
		logger:       logger,
	}
}

// Search возвращает не более limit объектов: весь tier 1 (по расстоянию) идёт перед tier 2.
// Ошибки Overpass не возвращаются: тур считается пустым.
func (uc *PharmacySearchUseCase) Search(
	ctx context.Context,
	center domain.Coordinate,
	radiusM int,
	limit int,
) []domain.Pharmacy {
	if limit <= 0 {
		return []domain.Pharmacy{}
	}

	seen := make(map[string]struct{})

	// Tier 1: только объекты с контактами
	contactElems := uc.fetch(ctx, domain.AmenityQuery{
		Amenity:   uc.amenity,
		Center:    center,
		RadiusM:   radiusM,
		AnyOfTags: ContactTagKeys(),
	}, 1)
	withContact := uc.collect(contactElems, center, seen)
	sortByDistance(withContact)

	if len(withContact) >= limit {
		uc.logger.Debug("Tier 1 filled the limit",
			zap.Int("tier1", len(withContact)),
			zap.Int("limit", limit))
		return withContact[:limit]
	}

	// Tier 2: все объекты, кроме уже найденных
	allElems := uc.fetch(ctx, domain.AmenityQuery{
		Amenity: uc.amenity,
		Center:  center,
		RadiusM: radiusM,
	}, 2)
	rest := uc.collect(allElems, center, seen)
	sortByDistance(rest)

	merged := make([]domain.Pharmacy, 0, len(withContact)+len(rest))
	merged = append(merged, withContact...)
	merged = append(merged, rest...)
	final := dedupe(merged, limit)

	uc.logger.Debug("Pharmacy search completed",
		zap.Int("tier1", len(withContact)),
		zap.Int("tier2", len(rest)),
		zap.Int("returned", len(final)))

	return final
}

func (uc *PharmacySearchUseCase) fetch(ctx context.Context, q domain.AmenityQuery, tier int) []domain.OverpassElement {
	elems, err := uc.overpassRepo.FindAmenities(ctx, q)
	if err != nil {
		uc.logger.Warn("Overpass query failed, treating tier as empty",
			zap.Int("tier", tier),
			zap.Error(err))
		return nil
	}
	return elems
}

// collect разбирает элементы, пропуская уже виденные ключи и элементы без координат
func (uc *PharmacySearchUseCase) collect(
	elems []domain.OverpassElement,
	center domain.Coordinate,
	seen map[string]struct{},
) []domain.Pharmacy {
	result := make([]domain.Pharmacy, 0, len(elems))
	for _, e := range elems {
		key := e.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		p, ok := uc.toPharmacy(e, center)
		if !ok {
			uc.logger.Debug("Dropping element",
				zap.String("element", key),
				zap.Error(domain.ErrMalformedElement))
			continue
		}
		result = append(result, p)
	}
	return result
}

func (uc *PharmacySearchUseCase) toPharmacy(e domain.OverpassElement, center domain.Coordinate) (domain.Pharmacy, bool) {
	pos, ok := e.Position()
	if !ok {
		return domain.Pharmacy{}, false
	}

	tags := e.Tags
	name := firstTag(tags, "name", "shop")
	if name == "" {
		name = uc.fallbackName
	}

	addrTags := addressTags(tags)
	formatted := utils.FormatAddress(tags)
	if formatted == "" {
		formatted = utils.FormatTags(addrTags)
	}

	return domain.Pharmacy{
		Name:             name,
		Lat:              pos.Lat,
		Lon:              pos.Lon,
		DistanceM:        utils.RoundTo1(utils.HaversineDistance(center.Lat, center.Lon, pos.Lat, pos.Lon)),
		AddressTags:      addrTags,
		FormattedAddress: formatted,
		Phone:            firstTag(tags, phoneKeys...),
		Email:            firstTag(tags, emailKeys...),
		Website:          firstTag(tags, websiteKeys...),
		OpeningHours:     tags.Find("opening_hours"),
		OSMType:          e.Type,
		OSMID:            e.ID,
	}, true
}

func firstTag(tags osm.Tags, keys ...string) string {
	for _, k := range keys {
		if v := tags.Find(k); v != "" {
			return v
		}
	}
	return ""
}

func addressTags(tags osm.Tags) osm.Tags {
	var out osm.Tags
	for _, t := range tags {
		_, listed := addressKeys[t.Key]
		if listed || strings.HasPrefix(t.Key, "addr:") {
			out = append(out, t)
		}
	}
	return out
}

func sortByDistance(items []domain.Pharmacy) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DistanceM < items[j].DistanceM
	})
}

func dedupe(items []domain.Pharmacy, limit int) []domain.Pharmacy {
	seen := make(map[string]struct{}, len(items))
	out := make([]domain.Pharmacy, 0, limit)
	for _, p := range items {
		key := p.IdentityKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// "pharmacy" -> "Pharmacy", "dentist_clinic" -> "Dentist clinic"
func displayName(amenity string) string {
	s := strings.ReplaceAll(strings.TrimSpace(amenity), "_", " ")
	if s == "" {
		return "Pharmacy"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
