package skills

import "strings"

// Set is a set of tags. Only tags that hold are members; the zero value is
// the empty set.
type Set uint8

// Of builds a Set from tags. Unknown tags are ignored; validate with Parse
// first.
func Of(tags ...Tag) Set {
	var s Set
	for _, t := range tags {
		s = s.With(t)
	}
	return s
}

// With returns s plus t.
func (s Set) With(t Tag) Set {
	return s | t.bit()
}

// Without returns s minus t.
func (s Set) Without(t Tag) Set {
	return s &^ t.bit()
}

// Has reports whether t is in s.
func (s Set) Has(t Tag) bool {
	b := t.bit()
	return b != 0 && s&b != 0
}

// Empty reports whether s has no members.
func (s Set) Empty() bool {
	return s == 0
}

// Contains reports whether every member of other is in s.
func (s Set) Contains(other Set) bool {
	return s&other == other
}

// Intersects reports whether s and other share a member.
func (s Set) Intersects(other Set) bool {
	return s&other != 0
}

// Tags returns the members in display order.
func (s Set) Tags() []Tag {
	tags := make([]Tag, 0, len(AllTags()))
	for _, t := range AllTags() {
		if s.Has(t) {
			tags = append(tags, t)
		}
	}
	return tags
}

// Strings returns the member names in display order.
func (s Set) Strings() []string {
	names := make([]string, 0, len(AllTags()))
	for _, t := range s.Tags() {
		names = append(names, string(t))
	}
	return names
}

func (s Set) String() string {
	return strings.Join(s.Strings(), ",")
}
