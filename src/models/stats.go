package models

// DashboardStats backs the admin dashboard counters.
type DashboardStats struct {
	TotalForms        int64            `json:"totalForms"`
	PublishedForms    int64            `json:"publishedForms"`
	TotalTemplates    int64            `json:"totalTemplates"`
	TotalSubmissions  int64            `json:"totalSubmissions"`
	SubmissionsByForm map[string]int64 `json:"submissionsByForm"`
}
