package request

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFromQuery(t *testing.T) {
	tests := []struct {
		query  string
		number int
		size   int
		offset int
	}{
		{"", 1, DefaultPerPage, 0},
		{"page=3&per_page=4", 3, 4, 8},
		{"page=0&per_page=0", 1, DefaultPerPage, 0},
		{"page=-2&per_page=abc", 1, DefaultPerPage, 0},
		{"page=2&per_page=500", 2, MaxPerPage, MaxPerPage},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			p := PageFromQuery(q)
			assert.Equal(t, tt.number, p.Number())
			assert.Equal(t, tt.size, p.Size())
			assert.Equal(t, tt.offset, p.Offset())
		})
	}
}

func TestPageRequest_ZeroValue(t *testing.T) {
	var p PageRequest
	assert.Equal(t, 1, p.Number())
	assert.Equal(t, DefaultPerPage, p.Size())
	assert.Equal(t, 0, p.Offset())
}
