package costar

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// maxSharedTitles caps the shared-movie listing; the rest collapses into an
// overflow count.
const maxSharedTitles = 10

// Verdict classifies the together average against the two solo averages.
type Verdict string

const (
	VerdictHigher Verdict = "higher"
	VerdictLower  Verdict = "lower"
	VerdictMixed  Verdict = "mixed"
	VerdictNoData Verdict = "no data"
)

// Verdict is "no data" unless all three sets have at least one rated movie.
func (c *Comparison) Verdict() Verdict {
	if !c.Together.HasRatings() || !c.OnlyA.HasRatings() || !c.OnlyB.HasRatings() {
		return VerdictNoData
	}

	switch {
	case c.Together.Mean > c.OnlyA.Mean && c.Together.Mean > c.OnlyB.Mean:
		return VerdictHigher
	case c.Together.Mean < c.OnlyA.Mean && c.Together.Mean < c.OnlyB.Mean:
		return VerdictLower
	default:
		return VerdictMixed
	}
}

// Render formats the comparison as the console report.
func (c *Comparison) Render() string {
	var b strings.Builder

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Actor comparison: %s vs %s\n", c.ActorA, c.ActorB)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "%s movies: %d\n", c.ActorA, c.CountA)
	fmt.Fprintf(&b, "%s movies: %d\n", c.ActorB, c.CountB)
	fmt.Fprintf(&b, "Movies together: %d\n", c.SharedCount)
	fmt.Fprintln(&b)

	if len(c.Together.Titles) > 0 {
		fmt.Fprintf(&b, "Movies %s and %s starred in together:\n", c.ActorA, c.ActorB)
		shared := slices.Clone(c.Together.Titles)
		slices.Sort(shared)
		for i, title := range shared {
			if i == maxSharedTitles {
				fmt.Fprintf(&b, "  ... and %d more\n", len(shared)-maxSharedTitles)
				break
			}
			fmt.Fprintf(&b, "  - %s\n", title)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, c.averagesTable())
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Analysis:")
	switch c.Verdict() {
	case VerdictHigher:
		fmt.Fprintln(&b, "  Together: HIGHER ratings than solo work!")
	case VerdictLower:
		fmt.Fprintln(&b, "  Together: LOWER ratings than solo work.")
	case VerdictMixed:
		fmt.Fprintln(&b, "  Mixed: collaborations land between the solo averages.")
	default:
		fmt.Fprintln(&b, "  Not enough rated movies to compare.")
	}

	if c.Together.HasRatings() {
		if c.OnlyA.HasRatings() {
			fmt.Fprintf(&b, "  Difference from %s solo: %+.2f\n", c.ActorA, c.Together.Mean-c.OnlyA.Mean)
		}
		if c.OnlyB.HasRatings() {
			fmt.Fprintf(&b, "  Difference from %s solo: %+.2f\n", c.ActorB, c.Together.Mean-c.OnlyB.Mean)
		}
	}

	return b.String()
}

func (c *Comparison) averagesTable() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Set", "Avg Rating", "Movies"})
	tw.AppendRow(table.Row{fmt.Sprintf("%s & %s together", c.ActorA, c.ActorB), formatMean(c.Together), c.Together.Count})
	tw.AppendRow(table.Row{c.ActorA + " only", formatMean(c.OnlyA), c.OnlyA.Count})
	tw.AppendRow(table.Row{c.ActorB + " only", formatMean(c.OnlyB), c.OnlyB.Count})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// formatMean renders a mean to two decimals. A set with no rated movies reads
// n/a; printing 0.00 would be indistinguishable from a real zero average.
func formatMean(a Aggregate) string {
	if !a.HasRatings() {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", a.Mean)
}
