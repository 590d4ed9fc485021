package entity

import "strconv"

// SeatLayout describes the auditorium grid shown by the booking wizard.
type SeatLayout struct {
	Rows        []string `json:"rows"`    // A, B, C, etc.
	Columns     int      `json:"columns"` // 1..Columns
	Unavailable []string `json:"unavailable"`
}

// Code builds a seat code such as "F5".
func (l SeatLayout) Code(row string, column int) string {
	return row + strconv.Itoa(column)
}

// Exists reports whether code names a seat inside the grid. Only the
// canonical spelling counts: "F5" exists, "F05" and "F+5" do not.
func (l SeatLayout) Exists(code string) bool {
	for _, row := range l.Rows {
		if len(code) <= len(row) || code[:len(row)] != row {
			continue
		}
		col, err := strconv.Atoi(code[len(row):])
		if err != nil || col < 1 || col > l.Columns {
			return false
		}
		return l.Code(row, col) == code
	}
	return false
}

// IsAvailable reports whether the seat exists and is not blocked.
func (l SeatLayout) IsAvailable(code string) bool {
	if !l.Exists(code) {
		return false
	}
	for _, u := range l.Unavailable {
		if u == code {
			return false
		}
	}
	return true
}
