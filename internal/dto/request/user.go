package request

type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	MemberSince *string `json:"memberSince,omitempty"`
	Avatar      *string `json:"avatar,omitempty" validate:"omitempty,url"`
}
