package analyses

// CheckStatus is the verdict for one rubric check.
type CheckStatus string

const (
	CheckStatusPass    CheckStatus = "pass"
	CheckStatusFail    CheckStatus = "fail"
	CheckStatusWarning CheckStatus = "warning"
)

// ActionItemPriority orders improvement suggestions.
type ActionItemPriority string

const (
	PriorityHigh   ActionItemPriority = "high"
	PriorityMedium ActionItemPriority = "medium"
	PriorityLow    ActionItemPriority = "low"
)

// Check is one rubric evaluation. Immutable once constructed.
type Check struct {
	Name        string      `json:"name"`
	Status      CheckStatus `json:"status"`
	Explanation string      `json:"explanation"`
	Improvement string      `json:"improvement"`
}

// CategoryResult groups the checks of one category. PassedCount and
// TotalCount are derived from Checks, never taken from input.
type CategoryResult struct {
	Name        string  `json:"name"`
	Checks      []Check `json:"checks"`
	PassedCount int     `json:"passedCount"`
	TotalCount  int     `json:"totalCount"`
}

// Categories holds all five fixed category keys; every key is always present.
type Categories struct {
	Content  CategoryResult `json:"content"`
	Format   CategoryResult `json:"format"`
	Skills   CategoryResult `json:"skills"`
	Sections CategoryResult `json:"sections"`
	Style    CategoryResult `json:"style"`
}

// ActionItem is a prioritized improvement suggestion.
type ActionItem struct {
	Priority ActionItemPriority `json:"priority"`
	Task     string             `json:"task"`
	Detail   string             `json:"detail"`
}

// AnalysisResult is the full normalized scoring payload.
type AnalysisResult struct {
	ATSScore     int          `json:"atsScore"`
	WritingScore int          `json:"writingScore"`
	OverallGrade string       `json:"overallGrade"`
	Categories   Categories   `json:"categories"`
	ActionItems  []ActionItem `json:"actionItems"`
}

// ByKey returns the category result for a taxonomy key.
func (c Categories) ByKey(key string) (CategoryResult, bool) {
	switch key {
	case CategoryContent:
		return c.Content, true
	case CategoryFormat:
		return c.Format, true
	case CategorySkills:
		return c.Skills, true
	case CategorySections:
		return c.Sections, true
	case CategoryStyle:
		return c.Style, true
	default:
		return CategoryResult{}, false
	}
}

// Ordered returns the category results in taxonomy order.
func (c Categories) Ordered() []CategoryResult {
	out := make([]CategoryResult, 0, len(Taxonomy))
	for _, spec := range Taxonomy {
		if result, ok := c.ByKey(spec.Key); ok {
			out = append(out, result)
		}
	}
	return out
}

func (c *Categories) set(key string, result CategoryResult) {
	switch key {
	case CategoryContent:
		c.Content = result
	case CategoryFormat:
		c.Format = result
	case CategorySkills:
		c.Skills = result
	case CategorySections:
		c.Sections = result
	case CategoryStyle:
		c.Style = result
	}
}
