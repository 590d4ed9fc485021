package request

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type CreateNotificationRequest struct {
	Type    string `json:"type" validate:"required,oneof=booking offer movie"`
	Title   string `json:"title" validate:"required,max=100"`
	Message string `json:"message" validate:"required,max=500"`
}
