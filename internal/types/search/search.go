package search

// AdDoc is the shape of an ad inside the Elasticsearch index.
type AdDoc struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Location    string `json:"location,omitempty"`
}
