package response_models

type DashboardReport struct {
	TotalAccounts    int64 `json:"totalAccounts"`
	PremiumAccounts  int64 `json:"premiumAccounts"`
	NewAccounts30d   int64 `json:"newAccounts30d"`
	TotalLessons     int64 `json:"totalLessons"`
	TotalReports     int64 `json:"totalReports"`
	TotalComments    int64 `json:"totalComments"`
	ReportedLessons  []AggregatedReportItem `json:"reportedLessons"`
}
