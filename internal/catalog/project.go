package catalog

import (
	"fmt"
	"strconv"
)

const (
	// PlaceholderImage is what the storefront shows for ads without photos.
	PlaceholderImage = "images/placeholder.jpg"

	// DateUnavailable replaces dates that cannot be formatted.
	DateUnavailable = "Fecha no disponible"
)

var statusLabels = map[Status]string{
	StatusActive:   "Activo",
	StatusPending:  "Pendiente",
	StatusSold:     "Vendido",
	StatusInactive: "Inactivo",
	StatusExpired:  "Expirado",
}

// AdView is the presentation-ready projection of an Ad. It is derived
// data only and is never written back to any store.
type AdView struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	FormattedPrice string `json:"formatted_price"`
	FormattedDate  string `json:"formatted_date"`
	StatusLabel    string `json:"status_label"`
	PrimaryImage   string `json:"primary_image"`
	Category       string `json:"category"`
	Condition      string `json:"condition"`
	Location       string `json:"location"`
	SellerName     string `json:"seller_name"`
	SellerPhone    string `json:"seller_phone"`
	Views          int    `json:"views"`
}

// Project builds the view model for one ad. Pure: the input is not
// touched, and a field that cannot be formatted becomes a sentinel
// string instead of blocking the rest of the record.
func Project(a Ad) AdView {
	return AdView{
		ID:             a.ID,
		Title:          a.Title,
		Description:    a.Description,
		FormattedPrice: FormatPrice(a.Price),
		FormattedDate:  formatDate(a),
		StatusLabel:    StatusLabel(a.Status),
		PrimaryImage:   primaryImage(a.Images),
		Category:       a.Category,
		Condition:      a.Condition,
		Location:       a.Location,
		SellerName:     a.Seller.Name,
		SellerPhone:    a.Seller.Phone,
		Views:          a.Views,
	}
}

// StatusLabel maps a status to the word the UI shows for it.
func StatusLabel(s Status) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}

	return "Desconocido"
}

// FormatPrice renders a COP amount with dot thousands separators and the
// currency marker, e.g. 3500000 -> "$3.500.000".
func FormatPrice(price int64) string {
	sign := ""
	if price < 0 {
		sign = "-"
		price = -price
	}

	digits := strconv.FormatInt(price, 10)

	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	return "$" + sign + string(grouped)
}

func formatDate(a Ad) string {
	if a.CreatedAt.IsZero() {
		return DateUnavailable
	}

	return fmt.Sprintf("%d/%d/%d", a.CreatedAt.Day(), int(a.CreatedAt.Month()), a.CreatedAt.Year())
}

func primaryImage(images []string) string {
	if len(images) == 0 {
		return PlaceholderImage
	}

	return images[0]
}
