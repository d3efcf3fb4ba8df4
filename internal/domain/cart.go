package domain

// CartSnapshot maps a cart item key to its requested quantity. The redeemer
// treats it as an opaque payload: it validates neither prices nor product
// existence.
type CartSnapshot map[string]int
