package entity

type BookingStatus string

const (
	BookingStatusUpcoming  BookingStatus = "upcoming"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking keeps a denormalized snapshot of the movie (title, poster) taken at
// booking time. MovieID is a weak reference used for lookup only.
type Booking struct {
	ID          string        `json:"id"`
	MovieID     string        `json:"movieId"`
	MovieTitle  string        `json:"movieTitle"`
	Poster      string        `json:"poster"`
	Theater     string        `json:"theater"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Seats       []string      `json:"seats"`
	TotalAmount float64       `json:"totalAmount"`
	BookingDate string        `json:"bookingDate"`
	Status      BookingStatus `json:"status"`
}

type BookingPatch struct {
	MovieID     *string
	MovieTitle  *string
	Poster      *string
	Theater     *string
	Date        *string
	Time        *string
	Seats       *[]string
	TotalAmount *float64
	BookingDate *string
	Status      *BookingStatus
}

func (p BookingPatch) Apply(b *Booking) {
	if p.MovieID != nil {
		b.MovieID = *p.MovieID
	}
	if p.MovieTitle != nil {
		b.MovieTitle = *p.MovieTitle
	}
	if p.Poster != nil {
		b.Poster = *p.Poster
	}
	if p.Theater != nil {
		b.Theater = *p.Theater
	}
	if p.Date != nil {
		b.Date = *p.Date
	}
	if p.Time != nil {
		b.Time = *p.Time
	}
	if p.Seats != nil {
		b.Seats = append([]string(nil), (*p.Seats)...)
	}
	if p.TotalAmount != nil {
		b.TotalAmount = *p.TotalAmount
	}
	if p.BookingDate != nil {
		b.BookingDate = *p.BookingDate
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
}

func (b Booking) Clone() Booking {
	c := b
	if b.Seats != nil {
		c.Seats = append([]string(nil), b.Seats...)
	}
	return c
}

// IsPast reports whether the booking belongs to the history tab.
func (b Booking) IsPast() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled
}
