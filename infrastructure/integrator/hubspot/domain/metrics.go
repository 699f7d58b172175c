package hubspotdomain

type PipelineMetrics struct {
	TotalDeals          int     `json:"totalDeals"`
	TotalPipelineValue  float64 `json:"totalPipelineValue"`
	WonDeals            int     `json:"wonDeals"`
	WonRevenue          float64 `json:"wonRevenue"`
	ActiveDeals         int     `json:"activeDeals"`
	ActivePipelineValue float64 `json:"activePipelineValue"`
	AverageDealSize     float64 `json:"averageDealSize"`
	WinRate             float64 `json:"winRate"`
}

type RevenueMetrics struct {
	CurrentQuarterRevenue  float64 `json:"currentQuarterRevenue"`
	PreviousQuarterRevenue float64 `json:"previousQuarterRevenue"`
	YearToDateRevenue      float64 `json:"yearToDateRevenue"`
	TotalRevenue           float64 `json:"totalRevenue"`
	AverageDealSize        float64 `json:"averageDealSize"`
	RevenueGrowth          float64 `json:"revenueGrowth"`
	TotalCompanies         int     `json:"totalCompanies"`
	ActiveDeals            int     `json:"activeDeals"`
}

// Overview is every CRM view in one payload.
type Overview struct {
	Pipeline  *PipelineMetrics `json:"pipeline"`
	Revenue   *RevenueMetrics  `json:"revenue"`
	Deals     []Object         `json:"deals"`
	Contacts  []Object         `json:"contacts"`
	Companies []Object         `json:"companies"`
}
