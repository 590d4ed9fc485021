package request

type CreateReviewRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Avatar string `json:"avatar" validate:"omitempty,url"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"required,max=1000"`
}
