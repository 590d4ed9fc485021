package entity

type NotificationType string

const (
	NotificationTypeBooking NotificationType = "booking"
	NotificationTypeOffer   NotificationType = "offer"
	NotificationTypeMovie   NotificationType = "movie"
)

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp string           `json:"timestamp"`
	Read      bool             `json:"read"`
}
