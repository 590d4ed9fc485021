package request

// MovieListRequest backs the movies page: title search, genre chip, paging.
type MovieListRequest struct {
	Search string `json:"search"`
	Genre  string `json:"genre"`
	PageRequest
}

type CastMemberRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image" validate:"omitempty,url"`
}

// MovieRequest is the admin movie form. Blank genres and cast rows without a
// name or role are dropped before saving.
type MovieRequest struct {
	Title         string              `json:"title" validate:"required,max=200"`
	Poster        string              `json:"poster" validate:"omitempty,url"`
	Genre         []string            `json:"genre"`
	Language      string              `json:"language" validate:"max=50"`
	Duration      string              `json:"duration" validate:"required,max=20"`
	ReleaseDate   string              `json:"releaseDate" validate:"omitempty,datetime=2006-01-02"`
	Rating        float64             `json:"rating" validate:"min=0,max=5"`
	Description   string              `json:"description" validate:"required"`
	Cast          []CastMemberRequest `json:"cast" validate:"dive"`
	Director      string              `json:"director" validate:"required,max=100"`
	DirectorImage string              `json:"directorImage" validate:"omitempty,url"`
}

type MovieUpdateRequest struct {
	Title         *string              `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Poster        *string              `json:"poster,omitempty" validate:"omitempty,url"`
	Genre         *[]string            `json:"genre,omitempty"`
	Language      *string              `json:"language,omitempty" validate:"omitempty,max=50"`
	Duration      *string              `json:"duration,omitempty" validate:"omitempty,min=1,max=20"`
	ReleaseDate   *string              `json:"releaseDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Rating        *float64             `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Description   *string              `json:"description,omitempty"`
	Cast          *[]CastMemberRequest `json:"cast,omitempty" validate:"omitempty,dive"`
	Director      *string              `json:"director,omitempty" validate:"omitempty,min=1,max=100"`
	DirectorImage *string              `json:"directorImage,omitempty" validate:"omitempty,url"`
}
