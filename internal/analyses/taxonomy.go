package analyses

// The scoring rubric is a closed contract: 5 categories, 16 checks with fixed
// names, and a fixed grade scale. Consumers normalizing a model response must
// match these exact names and per-category counts.

// Category keys.
const (
	CategoryContent  = "content"
	CategoryFormat   = "format"
	CategorySkills   = "skills"
	CategorySections = "sections"
	CategoryStyle    = "style"
)

// CategorySpec names one category and its ordered checks.
type CategorySpec struct {
	Key         string
	DisplayName string
	CheckNames  []string
}

// Taxonomy is the fixed category order used for normalization, rendering and
// prompt construction.
var Taxonomy = []CategorySpec{
	{
		Key:         CategoryContent,
		DisplayName: "Content",
		CheckNames:  []string{"ATS Parsing", "Repeated Words", "Grammar & Spelling", "Quantified Achievements"},
	},
	{
		Key:         CategoryFormat,
		DisplayName: "Format",
		CheckNames:  []string{"File Type", "Resume Length", "Bullet Points"},
	},
	{
		Key:         CategorySkills,
		DisplayName: "Skills",
		CheckNames:  []string{"Hard Skills", "Soft Skills", "Relevance"},
	},
	{
		Key:         CategorySections,
		DisplayName: "Sections",
		CheckNames:  []string{"Contact Info", "Essential Sections", "Personality"},
	},
	{
		Key:         CategoryStyle,
		DisplayName: "Style",
		CheckNames:  []string{"Design & Layout", "Active Voice", "Buzzwords"},
	},
}

// TotalChecks is the number of rubric checks across all categories.
const TotalChecks = 16

// Grades is the closed grade scale, best first.
var Grades = []string{"A+", "A", "B+", "B", "C+", "C", "D", "F"}

// DefaultGrade is assigned when the model omits or invents a grade.
const DefaultGrade = "C"

// IsValidGrade reports whether g is on the grade scale.
func IsValidGrade(g string) bool {
	for _, grade := range Grades {
		if g == grade {
			return true
		}
	}
	return false
}
