package costar

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylegrant/costar/pkg/imdb"
)

func writeGzipTSV(t *testing.T, dir string, d imdb.Dataset, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, d.Filename())
	f, err := os.Create(path)
	require.NoError(t, err)

	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(strings.Join(lines, "\n") + "\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	return path
}

// miniDataset writes a four-table fixture: actors X and Y, movies T1..T3
// rated 8.0/6.0/4.0, where X is in T1+T2 and Y in T2+T3. A TV episode and a
// directing credit are mixed in to exercise the pre-filters.
func miniDataset(t *testing.T) map[imdb.Dataset]string {
	t.Helper()
	dir := t.TempDir()

	return map[imdb.Dataset]string{
		imdb.NameBasics: writeGzipTSV(t, dir, imdb.NameBasics,
			"nconst\tprimaryName\tprimaryProfession",
			"nm1\tX\tactor",
			"nm2\tY\tactor",
			"nm3\tZ\tdirector",
		),
		imdb.TitleBasics: writeGzipTSV(t, dir, imdb.TitleBasics,
			"tconst\tprimaryTitle\ttitleType",
			"tt1\tMovie One\tmovie",
			"tt2\tMovie Two\tmovie",
			"tt3\tMovie Three\tmovie",
			"tt4\tSome Episode\ttvEpisode",
		),
		imdb.TitlePrincipals: writeGzipTSV(t, dir, imdb.TitlePrincipals,
			"tconst\tnconst\tcategory",
			"tt1\tnm1\tactor",
			"tt2\tnm1\tactor",
			"tt2\tnm2\tactor",
			"tt3\tnm2\tactor",
			"tt3\tnm3\tdirector",
			"tt4\tnm1\tactor",
		),
		imdb.TitleRatings: writeGzipTSV(t, dir, imdb.TitleRatings,
			"tconst\taverageRating\tnumVotes",
			"tt1\t8.0\t100",
			"tt2\t6.0\t200",
			"tt3\t4.0\t300",
		),
	}
}

func TestLoadTables(t *testing.T) {
	ctx := context.Background()

	tables, err := LoadTables(ctx, miniDataset(t))
	require.NoError(t, err)

	// the TV episode is filtered out of the movie relation
	assert.Equal(t, 3, tables.Movies.Len())
	// the directing credit and the TV credit are filtered out
	assert.Equal(t, 4, tables.Credits.Len())
	assert.Equal(t, 3, tables.People.Len())
	assert.Equal(t, 3, tables.Ratings.Len())
}

func TestCompare(t *testing.T) {
	ctx := context.Background()

	t.Run("mini dataset", func(t *testing.T) {
		tables, err := LoadTables(ctx, miniDataset(t))
		require.NoError(t, err)

		got, err := Compare(ctx, tables, "X", "Y")
		require.NoError(t, err)

		assert.Equal(t, "X", got.ActorA)
		assert.Equal(t, "Y", got.ActorB)
		assert.Equal(t, 2, got.CountA)
		assert.Equal(t, 2, got.CountB)
		assert.Equal(t, 1, got.SharedCount)

		assert.Equal(t, 6.0, got.Together.Mean)
		assert.Equal(t, 1, got.Together.Count)
		assert.Equal(t, []string{"Movie Two"}, got.Together.Titles)

		assert.Equal(t, 8.0, got.OnlyA.Mean)
		assert.Equal(t, 1, got.OnlyA.Count)

		assert.Equal(t, 4.0, got.OnlyB.Mean)
		assert.Equal(t, 1, got.OnlyB.Count)
	})

	t.Run("unknown actor aborts", func(t *testing.T) {
		tables, err := LoadTables(ctx, miniDataset(t))
		require.NoError(t, err)

		_, err = Compare(ctx, tables, "X", "Nobody Here")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorContains(t, err, `"Nobody Here"`)
	})

	t.Run("tv-only credits leave an empty filmography", func(t *testing.T) {
		tables, err := LoadTables(ctx, miniDataset(t))
		require.NoError(t, err)

		// Z only directs, so the credit pre-filter leaves nothing
		got, err := Compare(ctx, tables, "X", "Z")
		require.NoError(t, err)
		assert.Equal(t, 0, got.CountB)
		assert.Equal(t, 0, got.SharedCount)
		assert.False(t, got.Together.HasRatings())
	})
}
