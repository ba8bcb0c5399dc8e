package costar

import (
	"strconv"

	"github.com/kylegrant/costar/pkg/imdb"
)

// Aggregate summarizes the ratings over one title set. Mean is 0 when Count
// is 0; that is absence of data, not a real average.
type Aggregate struct {
	Mean   float64
	Count  int
	Titles []string
}

// HasRatings reports whether Mean carries any data.
func (a Aggregate) HasRatings() bool {
	return a.Count > 0
}

// RatingIndex answers rating and title-name lookups by title identifier.
type RatingIndex struct {
	ratings    *imdb.Table
	titles     *imdb.Table
	ratingRows map[string][]int
	titleRows  map[string][]int
}

// NewRatingIndex indexes the rating and title relations by identifier.
func NewRatingIndex(ratings, titles *imdb.Table) *RatingIndex {
	return &RatingIndex{
		ratings:    ratings,
		titles:     titles,
		ratingRows: ratings.Index(imdb.ColTConst),
		titleRows:  titles.Index(imdb.ColTConst),
	}
}

// AverageRating computes the unweighted mean rating over a title set. Titles
// with an absent or unparsable rating contribute their name but no score.
// An empty set returns the zero Aggregate without any lookups.
func (ri *RatingIndex) AverageRating(set TitleSet) Aggregate {
	if len(set) == 0 {
		return Aggregate{}
	}

	var names []string
	for t := range set {
		for _, row := range ri.titleRows[t] {
			if f := ri.titles.Field(row, imdb.ColPrimaryTitle); f.Valid {
				names = append(names, f.String)
			}
		}
	}

	var sum float64
	var count int
	for t := range set {
		for _, row := range ri.ratingRows[t] {
			f := ri.ratings.Field(row, imdb.ColAverageRating)
			if !f.Valid {
				continue
			}
			v, err := strconv.ParseFloat(f.String, 64)
			if err != nil {
				continue
			}
			sum += v
			count++
		}
	}

	if count == 0 {
		return Aggregate{Titles: names}
	}

	return Aggregate{
		Mean:   sum / float64(count),
		Count:  count,
		Titles: names,
	}
}
