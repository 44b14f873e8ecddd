package model

// Prediction is one dashboard demand-prediction row, precomputed by the
// backend's forecasting pipeline.
type Prediction struct {
	MedicineName       string
	PredictedDemand    int
	ReorderLevel       int
	CurrentStock       int
	LastActualQuantity int
	StockStatus        string // "Out of Stock" | "Low Stock" | "Adequate"
	PredictionDate     string
	PercentageChange   *float64 // nil when the backend had insufficient data
	TrendSummary       string
}

// PredictionSummary is the backend's dashboard prediction payload.
type PredictionSummary struct {
	TotalMedicines int
	Predictions    []Prediction
}

// SalesUploadResult reports what a sales-data upload changed server-side.
type SalesUploadResult struct {
	Message       string
	SalesInserted int
	StockUpdated  int
	Skipped       []string
}
