package service

import (
	"fmt"
	"io"
)

// Table names one of the three CSV payloads.
type Table string

const (
	TableItems     Table = "items"
	TableBatches   Table = "batches"
	TableMovements Table = "movements"
)

func ParseTable(s string) (Table, error) {
	switch Table(s) {
	case TableItems, TableBatches, TableMovements:
		return Table(s), nil
	}
	return "", fmt.Errorf("unknown inventory table %q (want items, batches or movements)", s)
}

type RowAction string

const (
	ActionAdd     RowAction = "add"
	ActionUpdate  RowAction = "update"
	ActionSkip    RowAction = "skip"
	ActionInvalid RowAction = "invalid"
)

type RowDiff struct {
	Line        int       `json:"line"` // 1-based data row, header excluded
	ExternalKey string    `json:"external_key"`
	Action      RowAction `json:"action"`
	Reason      string    `json:"reason,omitempty"`
}

type Summary struct {
	ToAdd    int `json:"to_add"`
	ToUpdate int `json:"to_update"`
	ToSkip   int `json:"to_skip"`
}

// Preview is a dry-run diff; nothing is written while building it.
type Preview struct {
	Table       Table     `json:"table"`
	TotalRows   int       `json:"total_rows"`
	InvalidRows int       `json:"invalid_rows"`
	Diffs       []RowDiff `json:"diffs"`
	Summary     Summary   `json:"summary"`
	CanProceed  bool      `json:"can_proceed"`
}

type Result struct {
	Table   Table `json:"table"`
	Added   int   `json:"added"`
	Updated int   `json:"updated"`
	Skipped int   `json:"skipped"`
}

type InventoryService interface {
	// ExportCSV serializes one table as RFC 4180: UTF-8, CRLF line
	// endings, fixed header, ISO-8601 dates, dot decimals.
	ExportCSV(table Table) ([]byte, error)
	// ExportWorkbook bundles all three tables into one xlsx file.
	ExportWorkbook() ([]byte, error)
	// Preview parses without mutating storage. Any invalid row turns
	// CanProceed off; partial import of a malformed file never happens.
	Preview(table Table, r io.Reader) (*Preview, error)
	// Import commits add/update rows only. Re-importing an unchanged
	// file yields Added == 0 and Updated == 0.
	Import(table Table, r io.Reader) (*Result, error)
}
