package entity

// AnalyticsPoint is one entry in a ranked analytics series.
type AnalyticsPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Analytics bundles the ranked series shown on the dashboard.
type Analytics struct {
	TopProducts []AnalyticsPoint `json:"topProducts"`
	TopClients  []AnalyticsPoint `json:"topClients"`
	TopSellers  []AnalyticsPoint `json:"topSellers"`
	TopMonths   []AnalyticsPoint `json:"topMonths"`
}
