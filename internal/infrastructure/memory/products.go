package memory

import (
	"sync"

	"github.com/barista-preorder/internal/domain"
)

// Catalog is the static in-memory product catalogue. Only the image URL is
// ever written after construction (lazily generated images are cached here).
type Catalog struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewCatalog(products []domain.Product) *Catalog {
	c := &Catalog{products: make([]domain.Product, len(products))}
	copy(c.products, products)
	return c
}

// List returns a copy of the catalogue in menu order.
func (c *Catalog) List() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// SetImageURL caches a generated image URL on the product so generation
// happens at most once per product.
func (c *Catalog) SetImageURL(id, url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == id {
			c.products[i].ImageURL = url
			return true
		}
	}
	return false
}

// SeedProducts is the shop's menu.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Espresso Simple",
			Description: "Shot de café puro y fuerte.",
			Sizes: []domain.SizeOption{
				{Size: "4 oz", Price: 1.50},
				{Size: "8 oz", Price: 2.25},
			},
			ImageURL: "https://images.unsplash.com/photo-1509042239860-f550ce710b93?q=80&w=250&h=250&auto=format&fit=crop",
		},
		{
			ID:          "2",
			Name:        "Latte Vainilla",
			Description: "Leche texturizada con sirope de vainilla.",
			Sizes: []domain.SizeOption{
				{Size: "8 oz", Price: 3.25},
				{Size: "12 oz", Price: 4.00},
			},
		},
		{
			ID:          "3",
			Name:        "Latte Caramelo",
			Description: "Leche texturizada con sirope de caramelo.",
			Sizes: []domain.SizeOption{
				{Size: "8 oz", Price: 3.25},
				{Size: "12 oz", Price: 4.00},
			},
			ImageURL: "https://images.unsplash.com/photo-1572442388796-11668a67d5b2?q=80&w=250&h=250&auto=format&fit=crop",
		},
		{
			ID:          "4",
			Name:        "Cappuccino",
			Description: "Espresso con leche espumada.",
			Sizes: []domain.SizeOption{
				{Size: "8 oz", Price: 3.00},
				{Size: "12 oz", Price: 3.75},
			},
		},
		{
			ID:          "5",
			Name:        "Flat White",
			Description: "Doble shot con leche sedosa.",
			Sizes: []domain.SizeOption{
				{Size: "8 oz", Price: 3.00},
				{Size: "12 oz", Price: 3.75},
			},
			ImageURL: "https://images.unsplash.com/photo-1557006021-b95154529a13?q=80&w=250&h=250&auto=format&fit=crop",
		},
		{
			ID:          "6",
			Name:        "Cappuccino Cacao",
			Description: "Espresso con leche espumada y cacao.",
			Sizes: []domain.SizeOption{
				{Size: "8 oz", Price: 3.50},
				{Size: "12 oz", Price: 4.25},
			},
		},
	}
}
