package entity

// UserProfile is the single profile of the (unauthenticated) app user.
type UserProfile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	MemberSince string `json:"memberSince"`
	Avatar      string `json:"avatar"`
}

type ProfilePatch struct {
	Name        *string
	Email       *string
	MemberSince *string
	Avatar      *string
}

func (p ProfilePatch) Apply(u *UserProfile) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.MemberSince != nil {
		u.MemberSince = *p.MemberSince
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
}
