package costar

import (
	"github.com/kylegrant/costar/pkg/imdb"
)

// CreditIndex answers person-to-titles lookups over the credit relation
// without rescanning the table per person.
type CreditIndex struct {
	credits  *imdb.Table
	byPerson map[string][]int
}

// NewCreditIndex indexes the credit relation by person identifier. The
// relation is expected to be pre-filtered to acting credits on movies.
func NewCreditIndex(credits *imdb.Table) *CreditIndex {
	return &CreditIndex{
		credits:  credits,
		byPerson: credits.Index(imdb.ColNConst),
	}
}

// Filmography returns every title the person is credited in. Duplicate
// credits for the same title collapse.
func (ci *CreditIndex) Filmography(nconst string) TitleSet {
	titles := make(TitleSet)
	for _, row := range ci.byPerson[nconst] {
		if f := ci.credits.Field(row, imdb.ColTConst); f.Valid {
			titles[f.String] = struct{}{}
		}
	}
	return titles
}
