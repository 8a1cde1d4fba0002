package domain

type AttentionCategory string

const (
	CategoryCreate  AttentionCategory = "create"
	CategoryDecide  AttentionCategory = "decide"
	CategoryConnect AttentionCategory = "connect"
	CategoryReview  AttentionCategory = "review"
	CategoryRecover AttentionCategory = "recover"
)

// Categories returns all attention categories in canonical declaration order.
// Analyzer output sorted "by category" means this order, not lexical order.
func Categories() []AttentionCategory {
	return []AttentionCategory{
		CategoryCreate,
		CategoryDecide,
		CategoryConnect,
		CategoryReview,
		CategoryRecover,
	}
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"create": true, "decide": true, "connect": true,
	"review": true, "recover": true,
}

type RoleMode string

const (
	RoleMaker      RoleMode = "maker"
	RoleMarker     RoleMode = "marker"
	RoleMultiplier RoleMode = "multiplier"
)

// ValidRoles is the canonical set of accepted role mode strings.
var ValidRoles = map[string]bool{
	"maker": true, "marker": true, "multiplier": true,
}

type ItemStatus string

const (
	ItemActive    ItemStatus = "active"
	ItemCompleted ItemStatus = "completed"
	ItemLogjam    ItemStatus = "logjam"
	ItemParked    ItemStatus = "parked"
)

// ValidItemStatuses is the canonical set of accepted item status strings.
var ValidItemStatuses = map[string]bool{
	"active": true, "completed": true, "logjam": true, "parked": true,
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type Impact string

const (
	ImpactLow      Impact = "low"
	ImpactMedium   Impact = "medium"
	ImpactHigh     Impact = "high"
	ImpactCritical Impact = "critical"
)

type SuggestionKind string

const (
	SuggestReschedule  SuggestionKind = "reschedule"
	SuggestBatch       SuggestionKind = "batch"
	SuggestConsolidate SuggestionKind = "consolidate"
	SuggestAlignEnergy SuggestionKind = "align_energy"
)

type HealthStatus string

const (
	HealthHealthy  HealthStatus = "healthy"
	HealthWarning  HealthStatus = "warning"
	HealthCritical HealthStatus = "critical"
)
