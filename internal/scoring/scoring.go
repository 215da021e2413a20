// Package scoring computes derived scores for an assessment. Scores are
// never stored; they are recomputed from the answer set and the catalog on
// every read.
package scoring

import (
	"math"
	"sort"

	"agilecheck/internal/assessment"
	"agilecheck/internal/catalog"
)

// CategoryScore is the aggregate for one category: the summed answer scores
// for its questions and the maximum attainable.
type CategoryScore struct {
	Category catalog.Category
	Score    int
	MaxScore int
}

// Percent returns the category's rounded display percentage.
func (c CategoryScore) Percent() int {
	return Percent(c.Score, c.MaxScore)
}

// CategoryScores returns one entry per catalog category, in catalog order.
// Unanswered questions contribute zero.
func CategoryScores(a assessment.Assessment) []CategoryScore {
	out := make([]CategoryScore, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		qs := catalog.QuestionsInCategory(c)
		score := 0
		for _, q := range qs {
			if s, ok := a.AnswerFor(q.ID); ok {
				score += s
			}
		}
		out = append(out, CategoryScore{
			Category: c,
			Score:    score,
			MaxScore: len(qs) * catalog.MaxScore,
		})
	}
	return out
}

// Overall returns the total of all answer scores and the maximum attainable
// across the whole catalog. Every question belongs to exactly one category,
// so this is consistent with the per-category sums.
func Overall(a assessment.Assessment) (score, maxScore int) {
	for _, ans := range a.Answers {
		score += ans.Score
	}
	return score, catalog.Count() * catalog.MaxScore
}

// Percent returns round(100 * score / max), or 0 when max is 0.
func Percent(score, max int) int {
	if max == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(max) * 100))
}

// SortedByPercent returns the scores ordered by descending percentage. The
// sort is stable, so ties keep catalog category order and rendering stays
// deterministic.
func SortedByPercent(scores []CategoryScore) []CategoryScore {
	out := make([]CategoryScore, len(scores))
	copy(out, scores)
	sort.SliceStable(out, func(i, j int) bool {
		return percentOf(out[i]) > percentOf(out[j])
	})
	return out
}

// percentOf is the unrounded ratio used for ordering, so that sorting is not
// coarsened by display rounding.
func percentOf(c CategoryScore) float64 {
	if c.MaxScore == 0 {
		return 0
	}
	return float64(c.Score) / float64(c.MaxScore)
}
