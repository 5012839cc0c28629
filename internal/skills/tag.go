package skills

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSkill is returned for a skill name outside the closed tag set.
var ErrUnknownSkill = errors.New("unknown skill")

// Tag names a structural property of one problem instance.
type Tag string

const (
	TwoDigit    Tag = "twodigit"
	Subtract    Tag = "subtract"
	Overflow10  Tag = "overflow10"
	Underflow10 Tag = "underflow10"
	Negative    Tag = "negative"
)

// AllTags returns every tag in display order.
func AllTags() []Tag {
	return []Tag{TwoDigit, Subtract, Overflow10, Underflow10, Negative}
}

// bit returns the tag's position in a Set, or 0 for an unknown tag.
func (t Tag) bit() Set {
	for i, known := range AllTags() {
		if t == known {
			return 1 << i
		}
	}
	return 0
}

// Valid reports whether t belongs to the tag set.
func (t Tag) Valid() bool {
	return t.bit() != 0
}

// Parse converts a raw skill name into a Tag.
func Parse(name string) (Tag, error) {
	t := Tag(strings.TrimSpace(name))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSkill, name)
	}
	return t, nil
}

// ParseList parses every name into a Set. The first unknown name fails the
// whole list.
func ParseList(names []string) (Set, error) {
	var s Set
	for _, n := range names {
		t, err := Parse(n)
		if err != nil {
			return 0, err
		}
		s = s.With(t)
	}
	return s, nil
}

// DisplayName returns a short human-readable label for a tag.
func DisplayName(t Tag) string {
	switch t {
	case TwoDigit:
		return "Two-digit numbers"
	case Subtract:
		return "Subtraction"
	case Overflow10:
		return "Carrying"
	case Underflow10:
		return "Borrowing"
	case Negative:
		return "Negative results"
	default:
		return string(t)
	}
}

// Describe returns the constraint a generated question satisfies when t is
// required (wanted) or excluded (!wanted).
func Describe(t Tag, wanted bool) (string, error) {
	switch t {
	case TwoDigit:
		if wanted {
			return "The answer and operands are all two-digit numbers.", nil
		}
		return "Not every number is two-digit.", nil
	case Subtract:
		if wanted {
			return "The question will be a subtraction.", nil
		}
		return "The question will be an addition.", nil
	case Overflow10:
		if wanted {
			return "The sum of the units digits will be 10 or more, requiring a carry.", nil
		}
		return "No carry: either a subtraction, or the units digits sum to less than 10.", nil
	case Underflow10:
		if wanted {
			return "The units digit of the first operand is smaller than that of the second, requiring a borrow.", nil
		}
		return "No borrow: either an addition, or the first units digit is at least the second.", nil
	case Negative:
		if wanted {
			return "The question will be a subtraction with a negative result.", nil
		}
		return "The result will not be negative.", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSkill, string(t))
	}
}
