package types

import "sort"

// Outlook values reported by the career matching stage.
const (
	OutlookExcellent = "Excellent"
	OutlookGood      = "Good"
	OutlookFair      = "Fair"
	OutlookDeclining = "Declining"
)

// CareerPath represents a candidate occupation with a computed match score
// against the user's skill set plus labor-market metadata.
type CareerPath struct {
	Title               string   `json:"title"`
	SOCCode             string   `json:"socCode"`
	Match               int      `json:"match"`
	MatchedSkillsCount  int      `json:"matchedSkillsCount"`
	TotalRequiredSkills int      `json:"totalRequiredSkills"`
	Description         string   `json:"description"`
	RequiredSkills      []string `json:"requiredSkills"`
	SkillsToLearn       []string `json:"skillsToLearn"`
	SalaryRange         string   `json:"salaryRange"`
	Outlook             string   `json:"outlook"`
	GrowthRate          string   `json:"growthRate"`
	PostingsCount       string   `json:"postingsCount"`
}

// SortCareerPathsByMatch orders paths descending by match score. The sort is
// stable: ties keep the order the matching stage produced.
func SortCareerPathsByMatch(paths []CareerPath) {
	sort.SliceStable(paths, func(i, j int) bool {
		return paths[i].Match > paths[j].Match
	})
}
