// Package recommend maps category results to canned improvement guidance
// for the results screen.
package recommend

import (
	"sort"

	"agilecheck/internal/catalog"
	"agilecheck/internal/scoring"
)

const (
	// ImprovementThreshold is the percentage below which a category is
	// flagged as needing improvement.
	ImprovementThreshold = 60

	// StrengthThreshold is the percentage at or above which a category is
	// called out as a strength.
	StrengthThreshold = 80
)

// ForCategory returns the fixed recommendation list for a category.
func ForCategory(c catalog.Category) []string {
	switch c {
	case catalog.CategoryDelivery:
		return []string{
			"Implement shorter iteration cycles to deliver value more frequently",
			"Break work down into smaller, deliverable increments",
			"Focus on deploying working software rather than documentation",
			"Implement continuous integration and deployment practices",
		}
	case catalog.CategoryAdaptation:
		return []string{
			"Create processes for incorporating feedback throughout development",
			"Hold more frequent retrospectives to identify improvement areas",
			"Build flexibility into your planning to accommodate changes",
			"Develop a backlog refinement practice to prioritize changing requirements",
		}
	case catalog.CategoryCollaboration:
		return []string{
			"Schedule regular face-to-face interactions between team members",
			"Implement daily standups to improve communication",
			"Co-locate product owners with development teams when possible",
			"Create more opportunities for stakeholder feedback and involvement",
		}
	case catalog.CategoryTechnical:
		return []string{
			"Invest in refactoring to improve code quality",
			"Implement pair programming or code reviews",
			"Develop a robust automated testing strategy",
			"Create time for technical debt reduction",
		}
	case catalog.CategoryOptimization:
		return []string{
			"Identify and eliminate waste in your development process",
			"Focus on creating minimum viable solutions before adding features",
			"Implement value stream mapping to identify bottlenecks",
			"Regularly review and simplify your processes",
		}
	case catalog.CategoryTeam:
		return []string{
			"Empower teams to make more decisions without management approval",
			"Create a sustainable pace with reasonable sprint commitments",
			"Invest in team building and trust development",
			"Provide training opportunities to increase team capabilities",
		}
	default:
		return []string{"No specific recommendations available for this category"}
	}
}

// NeedsImprovement returns the categories scoring under the improvement
// threshold, weakest first.
func NeedsImprovement(scores []scoring.CategoryScore) []scoring.CategoryScore {
	var out []scoring.CategoryScore
	for _, cs := range scores {
		if cs.Percent() < ImprovementThreshold {
			out = append(out, cs)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return ratio(out[i]) < ratio(out[j])
	})
	return out
}

// Strengths returns the categories scoring at or above the strength
// threshold, strongest first.
func Strengths(scores []scoring.CategoryScore) []scoring.CategoryScore {
	var out []scoring.CategoryScore
	for _, cs := range scores {
		if cs.Percent() >= StrengthThreshold {
			out = append(out, cs)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return ratio(out[i]) > ratio(out[j])
	})
	return out
}

func ratio(c scoring.CategoryScore) float64 {
	if c.MaxScore == 0 {
		return 0
	}
	return float64(c.Score) / float64(c.MaxScore)
}
