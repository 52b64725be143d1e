package types

// JobMarketSnapshot is an aggregate summary plus sample listings representing
// hiring demand for a career path.
type JobMarketSnapshot struct {
	TotalEstimate    string         `json:"totalEstimate"`
	RemotePercentage string         `json:"remotePercentage"`
	AverageSalary    string         `json:"averageSalary"`
	TopCompanies     []string       `json:"topCompanies"`
	SampleListings   []JobListing   `json:"sampleListings"`
	Insights         MarketInsights `json:"insights"`
}

// JobListing is one sample listing in a job market snapshot.
type JobListing struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Salary          string   `json:"salary"`
	Type            string   `json:"type"`
	Remote          bool     `json:"remote"`
	Description     string   `json:"description"`
	KeyRequirements []string `json:"keyRequirements"`
	URL             string   `json:"url"`
}

// MarketInsights summarizes hiring dynamics for a role.
type MarketInsights struct {
	Trending        string `json:"trending"`
	Competitiveness string `json:"competitiveness"`
	TimeToHire      string `json:"timeToHire"`
}

// IsEmpty reports whether the snapshot parsed successfully but carries no
// sample listings.
func (j *JobMarketSnapshot) IsEmpty() bool {
	return j == nil || len(j.SampleListings) == 0
}
