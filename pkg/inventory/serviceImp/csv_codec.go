package serviceImp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"growbro/entities"
)

// Fixed header rows; import rejects files that don't match.
var (
	itemHeader     = []string{"external_key", "name", "category", "unit", "tracking_mode", "min_stock", "reorder_multiple", "is_consumable"}
	batchHeader    = []string{"external_key", "item_external_key", "acquired_on", "quantity", "unit_cost_cents"}
	movementHeader = []string{"external_key", "item_external_key", "batch_external_key", "occurred_at", "quantity", "note"}
)

// formatFloat keeps the dot decimal separator and no trailing zeros, so
// an exported value re-parses to the identical float on import.
func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func parseFloatField(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, v)
	}
	return f, nil
}

// parseTimestamp accepts RFC3339 or a bare ISO date.
func parseTimestamp(name, v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%s: %q is not an ISO-8601 timestamp", name, v)
}

func parseItemRow(rec []string) (entities.InventoryItem, error) {
	var it entities.InventoryItem
	if len(rec) != len(itemHeader) {
		return it, fmt.Errorf("expected %d columns, got %d", len(itemHeader), len(rec))
	}
	it.ExternalKey = strings.TrimSpace(rec[0])
	if it.ExternalKey == "" {
		return it, fmt.Errorf("external_key is required")
	}
	it.Name = strings.TrimSpace(rec[1])
	if it.Name == "" {
		return it, fmt.Errorf("name is required")
	}
	it.Category = strings.TrimSpace(rec[2])
	it.Unit = strings.TrimSpace(rec[3])
	it.TrackingMode = strings.TrimSpace(rec[4])
	if it.TrackingMode != "simple" && it.TrackingMode != "batch" {
		return it, fmt.Errorf("tracking_mode: %q is not simple or batch", rec[4])
	}
	var err error
	if it.MinStock, err = parseFloatField("min_stock", rec[5]); err != nil {
		return it, err
	}
	if it.ReorderMultiple, err = parseFloatField("reorder_multiple", rec[6]); err != nil {
		return it, err
	}
	if it.IsConsumable, err = strconv.ParseBool(strings.TrimSpace(rec[7])); err != nil {
		return it, fmt.Errorf("is_consumable: %q is not a boolean", rec[7])
	}
	return it, nil
}

func itemRecord(it entities.InventoryItem) []string {
	return []string{
		it.ExternalKey, it.Name, it.Category, it.Unit, it.TrackingMode,
		formatFloat(it.MinStock), formatFloat(it.ReorderMultiple),
		strconv.FormatBool(it.IsConsumable),
	}
}

func itemEqual(a, b entities.InventoryItem) bool {
	return a.Name == b.Name && a.Category == b.Category && a.Unit == b.Unit &&
		a.TrackingMode == b.TrackingMode && a.MinStock == b.MinStock &&
		a.ReorderMultiple == b.ReorderMultiple && a.IsConsumable == b.IsConsumable
}

func parseBatchRow(rec []string) (entities.InventoryBatch, error) {
	var b entities.InventoryBatch
	if len(rec) != len(batchHeader) {
		return b, fmt.Errorf("expected %d columns, got %d", len(batchHeader), len(rec))
	}
	b.ExternalKey = strings.TrimSpace(rec[0])
	if b.ExternalKey == "" {
		return b, fmt.Errorf("external_key is required")
	}
	b.ItemExternalKey = strings.TrimSpace(rec[1])
	if b.ItemExternalKey == "" {
		return b, fmt.Errorf("item_external_key is required")
	}
	d, err := time.Parse("2006-01-02", strings.TrimSpace(rec[2]))
	if err != nil {
		return b, fmt.Errorf("acquired_on: %q is not an ISO date", rec[2])
	}
	b.AcquiredOn = d.Format("2006-01-02")
	if b.Quantity, err = parseFloatField("quantity", rec[3]); err != nil {
		return b, err
	}
	if b.UnitCostCents, err = strconv.ParseInt(strings.TrimSpace(rec[4]), 10, 64); err != nil {
		return b, fmt.Errorf("unit_cost_cents: %q is not an integer", rec[4])
	}
	return b, nil
}

func batchRecord(b entities.InventoryBatch) []string {
	return []string{
		b.ExternalKey, b.ItemExternalKey, b.AcquiredOn,
		formatFloat(b.Quantity), strconv.FormatInt(b.UnitCostCents, 10),
	}
}

func batchEqual(a, b entities.InventoryBatch) bool {
	return a.ItemExternalKey == b.ItemExternalKey && a.AcquiredOn == b.AcquiredOn &&
		a.Quantity == b.Quantity && a.UnitCostCents == b.UnitCostCents
}

func parseMovementRow(rec []string) (entities.InventoryMovement, error) {
	var m entities.InventoryMovement
	if len(rec) != len(movementHeader) {
		return m, fmt.Errorf("expected %d columns, got %d", len(movementHeader), len(rec))
	}
	m.ExternalKey = strings.TrimSpace(rec[0])
	if m.ExternalKey == "" {
		return m, fmt.Errorf("external_key is required")
	}
	m.ItemExternalKey = strings.TrimSpace(rec[1])
	if m.ItemExternalKey == "" {
		return m, fmt.Errorf("item_external_key is required")
	}
	if bk := strings.TrimSpace(rec[2]); bk != "" {
		m.BatchExternalKey = &bk
	}
	var err error
	if m.OccurredAt, err = parseTimestamp("occurred_at", rec[3]); err != nil {
		return m, err
	}
	if m.Quantity, err = parseFloatField("quantity", rec[4]); err != nil {
		return m, err
	}
	m.Note = rec[5]
	return m, nil
}

func movementRecord(m entities.InventoryMovement) []string {
	bk := ""
	if m.BatchExternalKey != nil {
		bk = *m.BatchExternalKey
	}
	return []string{
		m.ExternalKey, m.ItemExternalKey, bk,
		m.OccurredAt.UTC().Format(time.RFC3339),
		formatFloat(m.Quantity), m.Note,
	}
}

func movementEqual(a, b entities.InventoryMovement) bool {
	if (a.BatchExternalKey == nil) != (b.BatchExternalKey == nil) {
		return false
	}
	if a.BatchExternalKey != nil && *a.BatchExternalKey != *b.BatchExternalKey {
		return false
	}
	return a.ItemExternalKey == b.ItemExternalKey &&
		a.OccurredAt.UTC().Equal(b.OccurredAt.UTC()) &&
		a.Quantity == b.Quantity && a.Note == b.Note
}
