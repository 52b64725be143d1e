package types

// Resource cost categories.
const (
	CostFree     = "Free"
	CostPaid     = "Paid"
	CostFreemium = "Freemium"
)

// LearningPathway is a staged curriculum of resources and projects to close
// the gap between current skills and a target career path's required skills.
type LearningPathway struct {
	Timeline      string         `json:"timeline"`
	Difficulty    string         `json:"difficulty"`
	LearningSteps []LearningStep `json:"learningSteps"`
}

// LearningStep is one stage of a learning pathway.
type LearningStep struct {
	Step      int        `json:"step"`
	Title     string     `json:"title"`
	Duration  string     `json:"duration"`
	Resources []Resource `json:"resources"`
	Skills    []string   `json:"skills"`
	Projects  []string   `json:"projects"`
}

// Resource is a single learning resource recommendation.
type Resource struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Provider string `json:"provider"`
	Cost     string `json:"cost"`
	URL      string `json:"url"`
}

// IsEmpty reports whether the pathway parsed successfully but carries no
// learning steps. The display contract renders this as an empty state, not
// an error.
func (p *LearningPathway) IsEmpty() bool {
	return p == nil || len(p.LearningSteps) == 0
}
