package repository

// CreateMedicineOptions holds the parameters for creating a medicine.
// Nil pointer fields take the backend-visible defaults.
type CreateMedicineOptions struct {
	Name         string
	BatchNo      string
	UnitPrice    float64
	SafetyStock  *int
	LeadTimeDays *int
	ExpiryDate   string
	InitialStock *int

	Category     string
	Manufacturer string
	Description  string
}

// UpdateMedicineOptions holds partial field changes; nil means keep.
type UpdateMedicineOptions struct {
	Name         *string
	BatchNo      *string
	UnitPrice    *float64
	SafetyStock  *int
	LeadTimeDays *int
	ExpiryDate   *string
	CurrentStock *int
	Category     *string
	Manufacturer *string
	Description  *string
}

// AdjustStockOptions holds the parameters for a stock adjustment.
type AdjustStockOptions struct {
	MedicineID int
	Delta      int
	Reason     string
}
