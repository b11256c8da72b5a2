package ad

// PublishAd is the form the publish flow submits.
type PublishAd struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	Location    string   `json:"location"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
}

// UpdateAd carries the fields an owner may change on an existing ad.
// Empty strings and nil slices mean "leave as is".
type UpdateAd struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *int64   `json:"price"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	Location    string   `json:"location"`
	Images      []string `json:"images"`
	Status      string   `json:"status"`
}
