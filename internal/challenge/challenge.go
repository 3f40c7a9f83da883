package challenge

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryWarm       Category = "warm"
	CategoryConfidence Category = "confidence"
	CategoryCharisma   Category = "charisma"
	CategoryConnection Category = "connection"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryWarm, CategoryConfidence, CategoryCharisma, CategoryConnection:
		return true
	default:
		return false
	}
}

// Label returns the display name for a category.
func (c Category) Label() string {
	switch c {
	case CategoryWarm:
		return "Warmth"
	case CategoryConfidence:
		return "Confidence"
	case CategoryCharisma:
		return "Charisma"
	case CategoryConnection:
		return "Connection"
	default:
		return string(c)
	}
}

func ParseCategory(input string) (Category, error) {
	c := Category(strings.TrimSpace(strings.ToLower(input)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %q", input)
	}
	return c, nil
}

// Challenge is one entry in the static daily-challenge table.
// IDs are stable; saved reflections reference challenges by text and
// category rather than by position.
type Challenge struct {
	ID         int      `yaml:"id"`
	Text       string   `yaml:"text"`
	Category   Category `yaml:"category"`
	Difficulty int      `yaml:"difficulty"`
}

// Select deterministically maps a day key to one table entry: the sum
// of the key's character codes reduced modulo the table length. The
// same day and table always yield the same challenge, across calls and
// across process restarts.
//
// An empty table is an integration defect, not a runtime condition.
func Select(dayKey string, table []Challenge) Challenge {
	if len(table) == 0 {
		panic("challenge: empty table")
	}
	sum := 0
	for i := 0; i < len(dayKey); i++ {
		sum = (sum + int(dayKey[i])) % len(table)
	}
	return table[sum]
}
