package entity

type Offer struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code"`
	Discount    string `json:"discount"` // display label, e.g. "20%" or "Free Combo"
	ValidUntil  string `json:"validUntil"`
	Image       string `json:"image"`
}
