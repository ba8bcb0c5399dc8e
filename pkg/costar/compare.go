package costar

import (
	"context"
	"fmt"

	"github.com/kylegrant/costar/pkg/imdb"
	"github.com/kylegrant/costar/pkg/logger"
)

// Tables holds the loaded source relations for one comparison run. Movies is
// pre-filtered to titleType "movie" and Credits to acting roles on those movies.
type Tables struct {
	People  *imdb.Table
	Movies  *imdb.Table
	Credits *imdb.Table
	Ratings *imdb.Table
}

// Comparison is the computed result of one run, ready for rendering.
type Comparison struct {
	ActorA string
	ActorB string

	CountA int // size of actor A's filmography
	CountB int // size of actor B's filmography

	Together Aggregate
	OnlyA    Aggregate
	OnlyB    Aggregate

	SharedCount int
}

// LoadTables reads the four relations with only the columns the pipeline
// needs and applies the movie/acting pre-filters.
func LoadTables(ctx context.Context, paths map[imdb.Dataset]string) (*Tables, error) {
	log := logger.FromCtx(ctx)

	log.Infow("loading dataset", "dataset", imdb.NameBasics)
	people, err := imdb.LoadTable(paths[imdb.NameBasics], []string{
		imdb.ColNConst, imdb.ColPrimaryName, imdb.ColPrimaryProfession,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", imdb.NameBasics, err)
	}

	log.Infow("loading dataset", "dataset", imdb.TitleBasics)
	titles, err := imdb.LoadTable(paths[imdb.TitleBasics], []string{
		imdb.ColTConst, imdb.ColPrimaryTitle, imdb.ColTitleType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", imdb.TitleBasics, err)
	}

	movies := titles.Filter(func(row int) bool {
		f := titles.Field(row, imdb.ColTitleType)
		return f.Valid && f.String == "movie"
	})
	log.Infow("filtered titles to movies", "movies", movies.Len(), "titles", titles.Len())

	movieIDs := make(TitleSet, movies.Len())
	for row := 0; row < movies.Len(); row++ {
		if f := movies.Field(row, imdb.ColTConst); f.Valid {
			movieIDs[f.String] = struct{}{}
		}
	}

	log.Infow("loading dataset", "dataset", imdb.TitlePrincipals)
	principals, err := imdb.LoadTable(paths[imdb.TitlePrincipals], []string{
		imdb.ColTConst, imdb.ColNConst, imdb.ColCategory,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", imdb.TitlePrincipals, err)
	}

	credits := principals.Filter(func(row int) bool {
		cat := principals.Field(row, imdb.ColCategory)
		if !cat.Valid || (cat.String != "actor" && cat.String != "actress") {
			return false
		}
		tconst := principals.Field(row, imdb.ColTConst)
		return tconst.Valid && movieIDs.Contains(tconst.String)
	})
	log.Infow("filtered credits to acting roles in movies", "credits", credits.Len())

	log.Infow("loading dataset", "dataset", imdb.TitleRatings)
	ratings, err := imdb.LoadTable(paths[imdb.TitleRatings], []string{
		imdb.ColTConst, imdb.ColAverageRating, imdb.ColNumVotes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", imdb.TitleRatings, err)
	}

	return &Tables{
		People:  people,
		Movies:  movies,
		Credits: credits,
		Ratings: ratings,
	}, nil
}

// Compare runs the whole pipeline: resolve both actors, extract and partition
// their filmographies, and aggregate the ratings of each partition.
func Compare(ctx context.Context, t *Tables, actorA, actorB string) (*Comparison, error) {
	log := logger.FromCtx(ctx)

	na, err := ResolveActor(ctx, t.People, actorA)
	if err != nil {
		return nil, err
	}

	nb, err := ResolveActor(ctx, t.People, actorB)
	if err != nil {
		return nil, err
	}

	credits := NewCreditIndex(t.Credits)
	fa := credits.Filmography(na)
	fb := credits.Filmography(nb)

	both, onlyA, onlyB := Partition(fa, fb)
	log.Infow("partitioned filmographies",
		"actorA", actorA, "moviesA", len(fa),
		"actorB", actorB, "moviesB", len(fb),
		"together", len(both),
	)

	ratings := NewRatingIndex(t.Ratings, t.Movies)

	return &Comparison{
		ActorA:      actorA,
		ActorB:      actorB,
		CountA:      len(fa),
		CountB:      len(fb),
		Together:    ratings.AverageRating(both),
		OnlyA:       ratings.AverageRating(onlyA),
		OnlyB:       ratings.AverageRating(onlyB),
		SharedCount: len(both),
	}, nil
}
