// Package seed holds the static catalogs the store starts from. Every
// function returns a fresh copy, so callers may mutate the result freely.
package seed

import "movie-theater/internal/data/entity"

// ==================== BOOKINGS ====================

func Bookings() []entity.Booking {
	return []entity.Booking{
		{
			ID:          "B12345",
			MovieID:     "1",
			MovieTitle:  "Interstellar: Beyond Time",
			Poster:      "https://images.unsplash.com/photo-1518676590629-3dcbd9c5a5c9?q=80&w=600&auto=format&fit=crop",
			Theater:     "Cineplex Downtown",
			Date:        "2025-05-20",
			Time:        "7:30 PM",
			Seats:       []string{"F5", "F6", "F7"},
			TotalAmount: 45.0,
			BookingDate: "2025-05-15",
			Status:      entity.BookingStatusUpcoming,
		},
		{
			ID:          "B12346",
			MovieID:     "3",
			MovieTitle:  "Echoes of Tomorrow",
			Poster:      "https://images.unsplash.com/photo-1626814026160-2237a95fc5a0?q=80&w=600&auto=format&fit=crop",
			Theater:     "Starlight Cinema",
			Date:        "2025-04-25",
			Time:        "6:15 PM",
			Seats:       []string{"D10", "D11"},
			TotalAmount: 30.0,
			BookingDate: "2025-04-20",
			Status:      entity.BookingStatusUpcoming,
		},
		{
			ID:          "B12347",
			MovieID:     "5",
			MovieTitle:  "The Silent Woods",
			Poster:      "https://images.unsplash.com/photo-1542204165-65bf26472b9b?q=80&w=600&auto=format&fit=crop",
			Theater:     "Cineplex Downtown",
			Date:        "2025-03-10",
			Time:        "8:45 PM",
			Seats:       []string{"H3", "H4"},
			TotalAmount: 30.0,
			BookingDate: "2025-03-05",
			Status:      entity.BookingStatusCompleted,
		},
	}
}

// ==================== OFFERS ====================

func Offers() []entity.Offer {
	return []entity.Offer{
		{
			ID:          "O1001",
			Title:       "Weekend Special",
			Description: "Get 20% off on all movie tickets booked for weekend shows!",
			Code:        "WEEKEND20",
			Discount:    "20%",
			ValidUntil:  "2025-06-30",
			Image:       "https://images.unsplash.com/photo-1585951237318-9ea5e175b891?q=80&w=800&auto=format&fit=crop",
		},
		{
			ID:          "O1002",
			Title:       "Family Package",
			Description: "Book 4 or more tickets and get a free popcorn and soda combo!",
			Code:        "FAMILY4",
			Discount:    "Free Combo",
			ValidUntil:  "2025-07-15",
			Image:       "https://images.unsplash.com/photo-1521967906867-14ec9d64bee8?q=80&w=800&auto=format&fit=crop",
		},
		{
			ID:          "O1003",
			Title:       "Student Discount",
			Description: "Students get 15% off on all movie tickets with valid ID!",
			Code:        "STUDENT15",
			Discount:    "15%",
			ValidUntil:  "2025-12-31",
			Image:       "https://images.unsplash.com/photo-1523240795612-9a054b0db644?q=80&w=800&auto=format&fit=crop",
		},
		{
			ID:          "O1004",
			Title:       "Early Bird Special",
			Description: "Book tickets 7 days in advance and get 25% off!",
			Code:        "EARLY25",
			Discount:    "25%",
			ValidUntil:  "2025-08-31",
			Image:       "https://images.unsplash.com/photo-1485846234645-a62644f84728?q=80&w=800&auto=format&fit=crop",
		},
	}
}

// ==================== MESSAGES ====================

const (
	SupportAvatar = portraits + "women/68.jpg"
	userAvatar    = portraits + "men/36.jpg"
)

func Messages() []entity.Message {
	return []entity.Message{
		{
			ID:        "M1001",
			Sender:    entity.SenderSupport,
			Content:   "Hello! Thank you for contacting MovieTheater support. How can we assist you today?",
			Timestamp: "2025-05-10T10:30:00",
			Read:      true,
			Avatar:    SupportAvatar,
		},
		{
			ID:        "M1002",
			Sender:    entity.SenderUser,
			Content:   "Hi, I booked tickets for Interstellar: Beyond Time but I need to change the date. Is that possible?",
			Timestamp: "2025-05-10T10:32:00",
			Read:      true,
			Avatar:    userAvatar,
		},
		{
			ID:        "M1003",
			Sender:    entity.SenderSupport,
			Content:   "Of course! We can help you with that. Could you please provide your booking ID?",
			Timestamp: "2025-05-10T10:35:00",
			Read:      true,
			Avatar:    SupportAvatar,
		},
		{
			ID:        "M1004",
			Sender:    entity.SenderUser,
			Content:   "It's B12345.",
			Timestamp: "2025-05-10T10:36:00",
			Read:      true,
			Avatar:    userAvatar,
		},
		{
			ID:        "M1005",
			Sender:    entity.SenderSupport,
			Content:   "Thank you! I can see your booking for May 20th. What date would you like to change it to?",
			Timestamp: "2025-05-10T10:38:00",
			Read:      false,
			Avatar:    SupportAvatar,
		},
	}
}

// ==================== NOTIFICATIONS ====================

func Notifications() []entity.Notification {
	return []entity.Notification{
		{
			ID:        "N1001",
			Type:      entity.NotificationTypeBooking,
			Title:     "Booking Confirmed",
			Message:   "Your booking for Interstellar: Beyond Time on May 20th has been confirmed!",
			Timestamp: "2025-05-15T14:30:00",
			Read:      true,
		},
		{
			ID:        "N1002",
			Type:      entity.NotificationTypeMovie,
			Title:     "New Movie Release",
			Message:   "The Last Guardian is now available for booking! Don't miss the premiere on June 10th.",
			Timestamp: "2025-05-20T09:15:00",
			Read:      false,
		},
		{
			ID:        "N1003",
			Type:      entity.NotificationTypeOffer,
			Title:     "Special Offer",
			Message:   "Weekend Special: Get 20% off on all movie tickets booked for weekend shows!",
			Timestamp: "2025-05-22T11:45:00",
			Read:      false,
		},
		{
			ID:        "N1004",
			Type:      entity.NotificationTypeBooking,
			Title:     "Booking Reminder",
			Message:   "Reminder: Your show for Echoes of Tomorrow starts tomorrow at 6:15 PM.",
			Timestamp: "2025-04-24T16:00:00",
			Read:      false,
		},
	}
}

// ==================== CATALOGS ====================

func Theaters() []string {
	return []string{
		"Cineplex Downtown",
		"Starlight Cinema",
		"Grand Theater",
		"Metropolis IMAX",
		"Riverside Cinemas",
	}
}

func Showtimes() []string {
	return []string{"10:00 AM", "12:30 PM", "3:00 PM", "5:30 PM", "7:30 PM", "9:45 PM"}
}

// SeatLayout is the 8x12 auditorium with its permanently blocked seats.
func SeatLayout() entity.SeatLayout {
	return entity.SeatLayout{
		Rows:        []string{"A", "B", "C", "D", "E", "F", "G", "H"},
		Columns:     12,
		Unavailable: []string{"A3", "A4", "B5", "C2", "C3", "D7", "D8", "E1", "F10", "G11", "H6"},
	}
}

func UserProfile() entity.UserProfile {
	return entity.UserProfile{
		Name:        "John Doe",
		Email:       "john.doe@example.com",
		MemberSince: "January 2025",
		Avatar:      userAvatar,
	}
}

// ReviewUsers are sample reviews shown on movie pages that have none yet.
func ReviewUsers() []entity.Review {
	return []entity.Review{
		{
			ID:     "1",
			Name:   "Sarah Johnson",
			Avatar: portraits + "women/32.jpg",
			Rating: 5,
			Review: "Absolutely loved this movie! The visuals were stunning and the story kept me engaged throughout.",
		},
		{
			ID:     "2",
			Name:   "Michael Chen",
			Avatar: portraits + "men/52.jpg",
			Rating: 4,
			Review: "Great performances by the cast. The plot was a bit predictable but still enjoyable.",
		},
		{
			ID:     "3",
			Name:   "Olivia Rodriguez",
			Avatar: portraits + "women/79.jpg",
			Rating: 3,
			Review: "Decent movie but not as good as the director's previous works. Worth watching once.",
		},
	}
}
