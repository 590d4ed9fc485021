package store

import (
	"strconv"
	"time"
)

// Id prefixes per collection.
const (
	prefixMovie        = "m"
	prefixBooking      = "B"
	prefixReview       = "r"
	prefixMessage      = "M"
	prefixNotification = "N"
)

// idGenerator issues "<prefix><unix ms>" ids. Two calls within the same
// millisecond would collide, so the millisecond part is kept strictly
// increasing per prefix. Ids therefore still sort by creation order.
// Not safe for concurrent use; the store calls it under its lock.
type idGenerator struct {
	last map[string]int64
}

func newIDGenerator() *idGenerator {
	return &idGenerator{last: make(map[string]int64)}
}

// next returns a new id that taken(id) reports as unused.
func (g *idGenerator) next(prefix string, now time.Time, taken func(string) bool) string {
	ms := now.UnixMilli()
	if last, ok := g.last[prefix]; ok && ms <= last {
		ms = last + 1
	}

	id := prefix + strconv.FormatInt(ms, 10)
	for taken != nil && taken(id) {
		ms++
		id = prefix + strconv.FormatInt(ms, 10)
	}

	g.last[prefix] = ms
	return id
}
