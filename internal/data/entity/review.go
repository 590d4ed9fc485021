package entity

// Review is embedded in a Movie. Reviews are only ever appended.
type Review struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Rating int    `json:"rating"` // 1-5
	Review string `json:"review"`
}
