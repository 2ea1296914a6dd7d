package models

import "time"

type Category string

const (
	CategoryB2B Category = "B2B"
	CategoryB2C Category = "B2C"
)

type Money struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currency_code"`
}

// Merchandise is one purchasable variant as the storefront shows it.
type Merchandise struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	SKU          string `json:"sku"`
	Price        Money  `json:"price"`
	Image        string `json:"image"`
	ProductTitle string `json:"product_title"`
	ProductImage string `json:"product_image"`
}

type CartLine struct {
	ID          string      `json:"id"`
	Merchandise Merchandise `json:"merchandise"`
	Quantity    int         `json:"quantity"`
	Subtotal    Money       `json:"subtotal"`
}

// Cart mirrors the remote platform's cart. Counts and totals always come from
// the platform, never from local arithmetic.
type Cart struct {
	ID            string     `json:"id"`
	CheckoutURL   string     `json:"checkout_url"`
	TotalQuantity int        `json:"total_quantity"`
	Subtotal      Money      `json:"subtotal"`
	Lines         []CartLine `json:"lines"`
}

type Product struct {
	ID            string   `json:"id"`
	SKU           string   `json:"sku"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Discount      *int     `json:"discount,omitempty"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Volume        string   `json:"volume"`
	Application   string   `json:"application"`
	Image         string   `json:"image"`
	Gallery       []string `json:"gallery,omitempty"`
	Category      Category `json:"category"`
	DetailsURL    string   `json:"details_url"`
}

type Notification struct {
	ID        string    `json:"id"`
	Severity  string    `json:"severity"`
	SKU       string    `json:"sku,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type Article struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Excerpt        string   `json:"excerpt"`
	Content        string   `json:"content"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	Author         string   `json:"author"`
	Date           string   `json:"date"`
	ReadingTime    string   `json:"reading_time"`
	Image          string   `json:"image"`
	SEOTitle       string   `json:"seo_title,omitempty"`
	SEODescription string   `json:"seo_description,omitempty"`
}

type ContactSubmission struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string  `gorm:"not null"                 json:"first_name"`
	LastName  string  `gorm:"not null"                 json:"last_name"`
	Email     string  `gorm:"not null;index"           json:"email"`
	Phone     string  `json:"phone"`
	Subject   string  `json:"subject"`
	Message   string  `gorm:"not null"                 json:"message"`
	Score     float64 `json:"score"`
	CreatedAt int64   `json:"created_at"`
}
