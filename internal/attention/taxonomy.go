package attention

import "github.com/alexanderramin/cadence/internal/domain"

// DefaultSwitchCost applies to any category transition not listed in the
// role's cost table. An explicit fallback keeps unknown pairs from ever
// failing a lookup.
const DefaultSwitchCost = 2

type transition struct {
	from domain.AttentionCategory
	to   domain.AttentionCategory
}

// switchCosts is the per-role context-switch cost table on a 0-10 scale.
// Tables are deliberately asymmetric: leaving a deep-focus category is
// cheaper than re-entering it after shallow work, because the re-entry pays
// the full cost of rebuilding mental context.
var switchCosts = map[domain.RoleMode]map[transition]int{
	domain.RoleMaker: {
		{domain.CategoryConnect, domain.CategoryCreate}: 8,
		{domain.CategoryCreate, domain.CategoryConnect}: 4,
		{domain.CategoryReview, domain.CategoryCreate}:  6,
		{domain.CategoryCreate, domain.CategoryReview}:  3,
		{domain.CategoryConnect, domain.CategoryDecide}: 6,
		{domain.CategoryDecide, domain.CategoryCreate}:  5,
		{domain.CategoryCreate, domain.CategoryDecide}:  4,
		{domain.CategoryConnect, domain.CategoryReview}: 3,
		{domain.CategoryRecover, domain.CategoryCreate}: 3,
		{domain.CategoryCreate, domain.CategoryRecover}: 1,
	},
	domain.RoleMarker: {
		{domain.CategoryConnect, domain.CategoryReview}: 7,
		{domain.CategoryReview, domain.CategoryConnect}: 3,
		{domain.CategoryCreate, domain.CategoryReview}:  5,
		{domain.CategoryDecide, domain.CategoryReview}:  4,
		{domain.CategoryReview, domain.CategoryDecide}:  5,
		{domain.CategoryConnect, domain.CategoryDecide}: 6,
		{domain.CategoryRecover, domain.CategoryReview}: 3,
		{domain.CategoryReview, domain.CategoryRecover}: 1,
	},
	domain.RoleMultiplier: {
		{domain.CategoryCreate, domain.CategoryConnect}: 3,
		{domain.CategoryConnect, domain.CategoryCreate}: 6,
		{domain.CategoryConnect, domain.CategoryDecide}: 4,
		{domain.CategoryDecide, domain.CategoryConnect}: 3,
		{domain.CategoryReview, domain.CategoryDecide}:  4,
		{domain.CategoryRecover, domain.CategoryDecide}: 3,
		{domain.CategoryDecide, domain.CategoryRecover}: 1,
	},
}

// SwitchCost returns the cost of transitioning between two categories under
// the given role. Unknown roles use the maker table; unlisted pairs fall
// back to DefaultSwitchCost.
func SwitchCost(role domain.RoleMode, from, to domain.AttentionCategory) int {
	table, ok := switchCosts[role]
	if !ok {
		table = switchCosts[domain.RoleMaker]
	}
	if cost, ok := table[transition{from, to}]; ok {
		return cost
	}
	return DefaultSwitchCost
}

// IsHighDemand reports whether a category represents cognitively demanding
// work that benefits from peak-hours placement.
func IsHighDemand(cat domain.AttentionCategory) bool {
	return cat == domain.CategoryCreate || cat == domain.CategoryDecide
}

// rescheduleWeights are the per-category multipliers applied when scoring
// how badly a high-demand item placed outside the peak window hurts.
var rescheduleWeights = map[domain.AttentionCategory]float64{
	domain.CategoryCreate: 0.9,
	domain.CategoryDecide: 0.7,
}

// RescheduleWeight returns the peak-misalignment weight for a category.
func RescheduleWeight(cat domain.AttentionCategory) float64 {
	return rescheduleWeights[cat]
}

// classifySeverity buckets a switch cost on the shared 0-10 scale.
func classifySeverity(cost int) domain.Severity {
	switch {
	case cost >= 8:
		return domain.SeverityHigh
	case cost >= 5:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}
