package model

// 聚合接口的返回结构，字段名与前端约定保持一致

// swagger:model WeekSummary
type WeekSummary struct {
	TotalDsaProblems      int `json:"totalDsaProblems"`
	TotalRevisionProblems int `json:"totalRevisionProblems"`
	TotalStudyTime        int `json:"totalStudyTime"`
	GymDays               int `json:"gymDays"`
	MeditationDays        int `json:"meditationDays"`
}

// swagger:model WeekReport
type WeekReport struct {
	Logs    []DailyLog  `json:"logs"`
	Summary WeekSummary `json:"summary"`
}

// HeatmapCell 月历中单日的强度，0-5 为当天满足的分类数
type HeatmapCell struct {
	Day       int `json:"day"`
	Intensity int `json:"intensity"`
}

// WeeklyBucket 以周日为起点的周桶，统计新题数量
type WeeklyBucket struct {
	Week     string `json:"week"` // "D/M - D/M"
	Problems int    `json:"problems"`
}

// swagger:model MonthReport
type MonthReport struct {
	Logs                  []DailyLog     `json:"logs"`
	HeatmapData           []HeatmapCell  `json:"heatmapData"`
	WeeklyDsaData         []WeeklyBucket `json:"weeklyDsaData"`
	ConsistencyPercentage int            `json:"consistencyPercentage"`
}

// swagger:model StreakSet
type StreakSet struct {
	Dsa        int `json:"dsa"`
	Meditation int `json:"meditation"`
	Gym        int `json:"gym"`
	Learning   int `json:"learning"`
}
