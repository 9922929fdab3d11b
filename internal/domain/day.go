package domain

import (
	"regexp"
	"strconv"
)

// DayRecord is the ingredient list of one day file, e.g. day1.lunch.csv.
type DayRecord struct {
	ID          string // file name without extension: "day1.lunch"
	Day         int    // day of the retreat
	Slot        string // meal or sub-slot, informational only
	Ingredients []Ingredient
}

var dayIDPattern = regexp.MustCompile(`(?i)^day(\d+)(?:\.(\w+))?$`)

// ParseDayID extracts the day index and slot from an identifier such as
// "day0", "day1.lunch" or "day1.2". ok is false for anything else.
func ParseDayID(id string) (day int, slot string, ok bool) {
	m := dayIDPattern.FindStringSubmatch(id)
	if m == nil {
		return 0, "", false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	return day, m[2], true
}
