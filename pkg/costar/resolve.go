package costar

import (
	"context"
	"fmt"
	"strings"

	"github.com/kylegrant/costar/pkg/imdb"
	"github.com/kylegrant/costar/pkg/logger"
)

// ErrNotFound means no person record matched the queried display name.
var ErrNotFound = fmt.Errorf("actor not found")

// ResolveActor finds the identifier for an actor by exact display-name match.
// When several people share the name, records whose professions mention
// acting win; remaining ties keep dataset load order, so the result is the
// first matching row, not necessarily the best-known person with that name.
func ResolveActor(ctx context.Context, people *imdb.Table, name string) (string, error) {
	log := logger.FromCtx(ctx)

	var matches []int
	for row := 0; row < people.Len(); row++ {
		if f := people.Field(row, imdb.ColPrimaryName); f.Valid && f.String == name {
			matches = append(matches, row)
		}
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	if len(matches) > 1 {
		var acting []int
		for _, row := range matches {
			prof := people.Field(row, imdb.ColPrimaryProfession)
			if prof.Valid && (strings.Contains(prof.String, "actor") || strings.Contains(prof.String, "actress")) {
				acting = append(acting, row)
			}
		}
		if len(acting) > 0 {
			matches = acting
		}
	}

	id := people.Field(matches[0], imdb.ColNConst)
	if !id.Valid {
		return "", fmt.Errorf("%w: %q has no identifier", ErrNotFound, name)
	}

	log.Infow("resolved actor", "name", name, "nconst", id.String)
	return id.String, nil
}
