package entity

// ShowOptions is everything the first two steps of the booking wizard need.
type ShowOptions struct {
	Theaters   []string   `json:"theaters"`
	Showtimes  []string   `json:"showtimes"`
	Layout     SeatLayout `json:"layout"`
	SeatPrice  float64    `json:"seatPrice"`
	BookingFee float64    `json:"bookingFee"`
	MaxSeats   int        `json:"maxSeats"`
}
