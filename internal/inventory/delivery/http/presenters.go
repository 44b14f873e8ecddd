package http

import (
	"pharmacy-inventory-console/internal/inventory"
	"pharmacy-inventory-console/internal/model"
	"pharmacy-inventory-console/pkg/response"
)

// --- Request DTOs ---

type queryReq struct {
	Query string `json:"query"`
}

type pageReq struct {
	Page int `json:"page" binding:"required"`
}

type sortReq struct {
	Key string `json:"key" binding:"required"`
}

type createReq struct {
	Name         string  `json:"medicine_name" binding:"required,min=1,max=255"`
	BatchNo      string  `json:"batch_no"      binding:"required,min=1,max=100"`
	UnitPrice    float64 `json:"unit_price"    binding:"required,gt=0"`
	SafetyStock  *int    `json:"safety_stock"  binding:"omitempty,gte=0"`
	LeadTimeDays *int    `json:"lead_time_days" binding:"omitempty,gte=0"`
	ExpiryDate   string  `json:"expiry_date"   binding:"required"`
	InitialStock *int    `json:"current_stock" binding:"omitempty,gte=0"`
	Category     string  `json:"category"      binding:"max=100"`
	Manufacturer string  `json:"manufacturer"  binding:"max=255"`
	Description  string  `json:"description"   binding:"max=1000"`
}

func (r createReq) toInput() inventory.CreateInput {
	return inventory.CreateInput{
		Name:         r.Name,
		BatchNo:      r.BatchNo,
		UnitPrice:    r.UnitPrice,
		SafetyStock:  r.SafetyStock,
		LeadTimeDays: r.LeadTimeDays,
		ExpiryDate:   r.ExpiryDate,
		InitialStock: r.InitialStock,
		Category:     r.Category,
		Manufacturer: r.Manufacturer,
		Description:  r.Description,
	}
}

type updateReq struct {
	ID           int      `json:"-"` // populated from URI param
	Name         *string  `json:"medicine_name" binding:"omitempty,min=1,max=255"`
	BatchNo      *string  `json:"batch_no"      binding:"omitempty,min=1,max=100"`
	UnitPrice    *float64 `json:"unit_price"    binding:"omitempty,gt=0"`
	SafetyStock  *int     `json:"safety_stock"  binding:"omitempty,gte=0"`
	LeadTimeDays *int     `json:"lead_time_days" binding:"omitempty,gte=0"`
	ExpiryDate   *string  `json:"expiry_date"   binding:"omitempty"`
	CurrentStock *int     `json:"current_stock" binding:"omitempty,gte=0"`
	Category     *string  `json:"category"      binding:"omitempty,max=100"`
	Manufacturer *string  `json:"manufacturer"  binding:"omitempty,max=255"`
	Description  *string  `json:"description"   binding:"omitempty,max=1000"`
}

func (r updateReq) toInput() inventory.UpdateInput {
	return inventory.UpdateInput{
		Name:         r.Name,
		BatchNo:      r.BatchNo,
		UnitPrice:    r.UnitPrice,
		SafetyStock:  r.SafetyStock,
		LeadTimeDays: r.LeadTimeDays,
		ExpiryDate:   r.ExpiryDate,
		CurrentStock: r.CurrentStock,
		Category:     r.Category,
		Manufacturer: r.Manufacturer,
		Description:  r.Description,
	}
}

type adjustReq struct {
	MedicineID int    `json:"-"` // populated from URI param
	Delta      int    `json:"delta"  binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

func (r adjustReq) toInput() inventory.AdjustStockInput {
	return inventory.AdjustStockInput{
		MedicineID: r.MedicineID,
		Delta:      r.Delta,
		Reason:     r.Reason,
	}
}

// --- Response DTOs ---

type medicineResp struct {
	ID           int     `json:"medicine_id"`
	Name         string  `json:"medicine_name"`
	BatchNo      string  `json:"batch_no"`
	UnitPrice    float64 `json:"unit_price"`
	SafetyStock  int     `json:"safety_stock"`
	LeadTimeDays int     `json:"lead_time_days"`
	ExpiryDate   string  `json:"expiry_date"`
	CurrentStock int     `json:"current_stock"`
	Category     string  `json:"category,omitempty"`
	Manufacturer string  `json:"manufacturer,omitempty"`
	Description  string  `json:"description,omitempty"`
	LastUpdated  string  `json:"last_updated,omitempty"`
}

func newMedicineResp(m model.Medicine) medicineResp {
	return medicineResp{
		ID:           m.ID,
		Name:         m.Name,
		BatchNo:      m.BatchNo,
		UnitPrice:    m.UnitPrice,
		SafetyStock:  m.SafetyStock,
		LeadTimeDays: m.LeadTimeDays,
		ExpiryDate:   m.ExpiryDate,
		CurrentStock: m.CurrentStock,
		Category:     m.Category,
		Manufacturer: m.Manufacturer,
		Description:  m.Description,
		LastUpdated:  m.LastUpdated,
	}
}

type viewResp struct {
	Rows       []medicineResp `json:"rows"`
	Query      string         `json:"query"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
	TotalItems int            `json:"total_items"`
	SortKey    string         `json:"sort_key"`
	SortDesc   bool           `json:"sort_desc"`
	Status     string         `json:"status"`
	LastError  string         `json:"last_error,omitempty"`
}

func newViewResp(v inventory.ViewOutput) viewResp {
	rows := make([]medicineResp, len(v.Rows))
	for i, m := range v.Rows {
		rows[i] = newMedicineResp(m)
	}
	return viewResp{
		Rows:       rows,
		Query:      v.Query,
		Page:       v.Page,
		PageSize:   v.PageSize,
		TotalPages: v.TotalPages,
		TotalItems: v.TotalItems,
		SortKey:    string(v.SortKey),
		SortDesc:   v.SortDesc,
		Status:     string(v.Status),
		LastError:  v.LastError,
	}
}

type notificationResp struct {
	ID        string            `json:"id"`
	Level     string            `json:"level"`
	Message   string            `json:"message"`
	CreatedAt response.DateTime `json:"created_at"`
}

type notificationsResp struct {
	Notifications []notificationResp `json:"notifications"`
}

func newNotificationsResp(notifications []inventory.Notification) notificationsResp {
	out := make([]notificationResp, len(notifications))
	for i, n := range notifications {
		out[i] = notificationResp{
			ID:        n.ID,
			Level:     n.Level,
			Message:   n.Message,
			CreatedAt: response.DateTime(n.CreatedAt),
		}
	}
	return notificationsResp{Notifications: out}
}
