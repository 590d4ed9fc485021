package utils

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// ==================== REQUEST ID ====================

func GenerateRequestID() string {
	return uuid.New().String()
}

// ==================== AVATAR ====================

const portraitBaseURL = "https://randomuser.me/api/portraits"

// RandomPortrait picks a placeholder avatar, e.g.
// https://randomuser.me/api/portraits/women/42.jpg
func RandomPortrait() string {
	gender := "men"
	if rand.Float64() > 0.5 {
		gender = "women"
	}
	return fmt.Sprintf("%s/%s/%d.jpg", portraitBaseURL, gender, rand.Intn(100))
}
