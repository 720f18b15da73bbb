package entities

import "time"

// InventoryItem is reconciled on re-import solely by ExternalKey:
// identical rows must diff to zero changes.
type InventoryItem struct {
	ItemID          uint    `gorm:"primaryKey" json:"item_id"`
	ExternalKey     string  `gorm:"uniqueIndex" json:"external_key"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Unit            string  `json:"unit"`
	TrackingMode    string  `json:"tracking_mode"` // simple|batch
	MinStock        float64 `json:"min_stock"`
	ReorderMultiple float64 `json:"reorder_multiple"`
	IsConsumable    bool    `json:"is_consumable"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type InventoryBatch struct {
	BatchID         uint      `gorm:"primaryKey" json:"batch_id"`
	ExternalKey     string    `gorm:"uniqueIndex" json:"external_key"`
	ItemExternalKey string    `gorm:"index" json:"item_external_key"`
	AcquiredOn      string    `json:"acquired_on"` // YYYY-MM-DD
	Quantity        float64   `json:"quantity"`
	UnitCostCents   int64     `json:"unit_cost_cents"` // minor units, no float drift
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type InventoryMovement struct {
	MovementID       uint      `gorm:"primaryKey" json:"movement_id"`
	ExternalKey      string    `gorm:"uniqueIndex" json:"external_key"`
	ItemExternalKey  string    `gorm:"index" json:"item_external_key"`
	BatchExternalKey *string   `json:"batch_external_key"`
	OccurredAt       time.Time `json:"occurred_at"`
	Quantity         float64   `json:"quantity"` // signed delta
	Note             string    `json:"note"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
