package domain

import (
	"github.com/shopspring/decimal"
)

type DashboardMetrics struct {
	TotalDeals         int64           `json:"totalDeals"`
	TotalValue         decimal.Decimal `json:"totalValue"`
	WonDeals           int64           `json:"wonDeals"`
	LostDeals          int64           `json:"lostDeals"`
	ActiveContacts     int64           `json:"activeContacts"`
	ActiveCompanies    int64           `json:"activeCompanies"`
	ActivitiesThisWeek int64           `json:"activitiesThisWeek"`
	ConversionRate     float64         `json:"conversionRate"`
}

type PipelineStage struct {
	Stage         DealStage       `json:"stage"`
	Count         int64           `json:"count"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	WeightedValue decimal.Decimal `json:"weightedValue"`
	Deals         []*Deal         `json:"deals,omitempty"`
}

type MonthlyRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Deals   int64           `json:"deals"`
}

type WinLossMonth struct {
	Month     string          `json:"month"`
	Won       int64           `json:"won"`
	Lost      int64           `json:"lost"`
	WonValue  decimal.Decimal `json:"wonValue"`
	LostValue decimal.Decimal `json:"lostValue"`
	WinRate   float64         `json:"winRate"`
}

type ActivitySummary struct {
	Type      ActivityType `json:"type"`
	Total     int64        `json:"total"`
	Completed int64        `json:"completed"`
	Pending   int64        `json:"pending"`
	Overdue   int64        `json:"overdue"`
}

type Forecast struct {
	TotalPipelineValue decimal.Decimal `json:"totalPipelineValue"`
	WeightedForecast   decimal.Decimal `json:"weightedForecast"`
	OpenDeals          int64           `json:"openDeals"`
	Stages             []PipelineStage `json:"stages"`
}

type SearchResults struct {
	Query     string     `json:"query"`
	Contacts  []*Contact `json:"contacts"`
	Companies []*Company `json:"companies"`
	Deals     []*Deal    `json:"deals"`
}
