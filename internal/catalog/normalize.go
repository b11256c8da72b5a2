package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Defaults applied to records that arrive without the optional fields.
// The wording matches what the storefront renders for missing data.
const (
	DefaultTitle       = "Anuncio sin título"
	DefaultDescription = "No hay descripción disponible."
	DefaultCondition   = "No especificado"
	DefaultSellerName  = "Vendedor anónimo"
	DefaultSellerPhone = "No disponible"
)

// RawAd is the loosely-structured shape records have at the data-source
// boundary. Different generations of stored ads disagree on field names
// (`image` vs `images`, `date` vs `created_at`) and on the price type
// (number vs locale-formatted string); RawAd accepts all of them.
type RawAd struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       interface{} `json:"price"`
	Category    string      `json:"category"`
	Condition   string      `json:"condition"`
	Location    string      `json:"location"`
	Image       string      `json:"image,omitempty"`
	Images      []string    `json:"images"`
	Status      string      `json:"status"`
	Views       int         `json:"views"`
	CreatedAt   string      `json:"created_at"`
	Date        string      `json:"date,omitempty"`
	Seller      *Seller     `json:"seller"`
	Featured    bool        `json:"featured"`
}

// Normalize turns a raw record into a fully-populated Ad. It is total and
// idempotent: malformed optional fields are defaulted, never rejected, and
// re-normalizing an already normalized record changes nothing.
func Normalize(raw RawAd) Ad {
	a := Ad{
		ID:        raw.ID,
		Title:     raw.Title,
		Category:  raw.Category,
		Location:  raw.Location,
		Featured:  raw.Featured,
		Price:     parsePrice(raw.Price),
		Views:     raw.Views,
		CreatedAt: parseCreatedAt(raw.CreatedAt, raw.Date),
	}

	if a.Title == "" {
		a.Title = DefaultTitle
	}

	a.Description = raw.Description
	if a.Description == "" {
		a.Description = DefaultDescription
	}

	a.Condition = raw.Condition
	if a.Condition == "" {
		a.Condition = DefaultCondition
	}

	a.Status = parseStatus(raw.Status)

	if a.Views < 0 {
		a.Views = 0
	}

	a.Images = normalizeImages(raw.Images, raw.Image)

	if raw.Seller != nil {
		a.Seller = *raw.Seller
	}
	if a.Seller.Name == "" {
		a.Seller.Name = DefaultSellerName
	}
	if a.Seller.Phone == "" {
		a.Seller.Phone = DefaultSellerPhone
	}

	return a
}

func parseStatus(s string) Status {
	switch Status(s) {
	case StatusActive, StatusPending, StatusSold, StatusInactive, StatusExpired:
		return Status(s)
	default:
		return StatusActive
	}
}

// normalizeImages accepts both the images array and the legacy scalar
// image field, and always returns a sequence with no empty entries.
func normalizeImages(images []string, legacy string) []string {
	src := images
	if len(src) == 0 && legacy != "" {
		src = []string{legacy}
	}

	out := make([]string, 0, len(src))
	for _, img := range src {
		if img != "" {
			out = append(out, img)
		}
	}

	return out
}

// parsePrice accepts the numeric form as well as presentation strings such
// as "3.500.000" or "$3.500.000" left behind by older records. Anything
// unparseable becomes zero; the canonical value is always numeric.
func parsePrice(v interface{}) int64 {
	switch p := v.(type) {
	case nil:
		return 0
	case int64:
		return p
	case int:
		return int64(p)
	case float64:
		return int64(p)
	case json.Number:
		n, err := p.Int64()
		if err != nil {
			return 0
		}
		return n
	case string:
		cleaned := strings.NewReplacer("$", "", ".", "", ",", "", " ", "").Replace(p)
		n, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// parseCreatedAt prefers created_at and falls back to the legacy date
// field. Legacy values like "Hoy" are not dates at all; such records keep
// the zero time and sort as oldest.
func parseCreatedAt(createdAt string, legacy string) time.Time {
	for _, candidate := range []string{createdAt, legacy} {
		if candidate == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, candidate); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02", candidate); err == nil {
			return t
		}
	}

	return time.Time{}
}
