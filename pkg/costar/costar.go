// Package costar resolves two actors in the IMDb datasets, partitions their
// filmographies into shared and solo movie sets, and aggregates the average
// rating of each set.
package costar

// TitleSet is a filmography: the set of title identifiers credited to one person.
type TitleSet map[string]struct{}

// NewTitleSet builds a set from its members.
func NewTitleSet(titles ...string) TitleSet {
	s := make(TitleSet, len(titles))
	for _, t := range titles {
		s[t] = struct{}{}
	}
	return s
}

// Contains reports membership.
func (s TitleSet) Contains(title string) bool {
	_, ok := s[title]
	return ok
}
