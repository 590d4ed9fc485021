package entity

type CastMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

type Movie struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Poster        string       `json:"poster"`
	Genre         []string     `json:"genre"`
	Language      string       `json:"language"`
	Duration      string       `json:"duration"` // display string, e.g. "2h 49m"
	ReleaseDate   string       `json:"releaseDate"`
	Rating        float64      `json:"rating"` // 0-5
	Description   string       `json:"description"`
	Cast          []CastMember `json:"cast"`
	Director      string       `json:"director"`
	DirectorImage string       `json:"directorImage"`
	Reviews       []Review     `json:"reviews,omitempty"`
}

// MoviePatch holds the fields of a partial movie update. Nil means "not provided".
type MoviePatch struct {
	Title         *string
	Poster        *string
	Genre         *[]string
	Language      *string
	Duration      *string
	ReleaseDate   *string
	Rating        *float64
	Description   *string
	Cast          *[]CastMember
	Director      *string
	DirectorImage *string
	Reviews       *[]Review
}

// Apply shallow-merges the patch into m.
func (p MoviePatch) Apply(m *Movie) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Poster != nil {
		m.Poster = *p.Poster
	}
	if p.Genre != nil {
		m.Genre = append([]string(nil), (*p.Genre)...)
	}
	if p.Language != nil {
		m.Language = *p.Language
	}
	if p.Duration != nil {
		m.Duration = *p.Duration
	}
	if p.ReleaseDate != nil {
		m.ReleaseDate = *p.ReleaseDate
	}
	if p.Rating != nil {
		m.Rating = *p.Rating
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Cast != nil {
		m.Cast = append([]CastMember(nil), (*p.Cast)...)
	}
	if p.Director != nil {
		m.Director = *p.Director
	}
	if p.DirectorImage != nil {
		m.DirectorImage = *p.DirectorImage
	}
	if p.Reviews != nil {
		m.Reviews = append([]Review(nil), (*p.Reviews)...)
	}
}

// Clone returns a deep copy so callers never share slices with the store.
func (m Movie) Clone() Movie {
	c := m
	if m.Genre != nil {
		c.Genre = append([]string(nil), m.Genre...)
	}
	if m.Cast != nil {
		c.Cast = append([]CastMember(nil), m.Cast...)
	}
	if m.Reviews != nil {
		c.Reviews = append([]Review(nil), m.Reviews...)
	}
	return c
}
