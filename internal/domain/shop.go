package domain

type Shop struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Floor       int    `json:"floor"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

type Product struct {
	ID         int64  `json:"id"`
	ShopID     int64  `json:"shop_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type ShopListResponse struct {
	Shops []Shop `json:"shops"`
	Page  Page   `json:"page"`
}

type ProductListResponse struct {
	Shop     string    `json:"shop"`
	Products []Product `json:"products"`
}
