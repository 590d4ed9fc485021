package request

type CreateBookingRequest struct {
	MovieID string   `json:"movieId" validate:"required"`
	Theater string   `json:"theater" validate:"required"`
	Date    string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time    string   `json:"time" validate:"required"`
	Seats   []string `json:"seats" validate:"required,min=1,unique,dive,required"`
}

// BookingListRequest selects the my-bookings tab. Empty means all.
type BookingListRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=upcoming past"`
}
