package domain

// SizeOption is one purchasable size of a product.
type SizeOption struct {
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// Product is a catalogue entry. ImageURL may be empty until an image is
// generated lazily on first request.
type Product struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Sizes       []SizeOption `json:"sizes"`
	ImageURL    string       `json:"imageUrl,omitempty"`
}
