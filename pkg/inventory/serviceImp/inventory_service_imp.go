package serviceImp

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	repo "growbro/pkg/inventory/repository"
	"growbro/pkg/inventory/service"
)

// Import gates. Oversized input is rejected, never truncated.
const (
	MaxImportBytes = 10 << 20
	MaxImportRows  = 50000
)

type invSvc struct{ r repo.InventoryRepository }

func NewInventoryService(r repo.InventoryRepository) service.InventoryService {
	return &invSvc{r}
}

// op pairs one row's diff with the write that would apply it.
type op struct {
	diff   service.RowDiff
	commit func() error // nil for skip/invalid rows
}

func header(table service.Table) []string {
	switch table {
	case service.TableBatches:
		return batchHeader
	case service.TableMovements:
		return movementHeader
	default:
		return itemHeader
	}
}

func readGated(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImportBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxImportBytes {
		return nil, fmt.Errorf("import file exceeds the %d MB limit", MaxImportBytes>>20)
	}
	return data, nil
}

// readRecords validates the header and reads data rows, aborting the
// moment the row gate trips — no diff is ever built for an oversized
// file.
func readRecords(data []byte, want []string) ([][]string, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err != nil {
		return nil, errors.New("missing header row")
	}
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff") // BOM
	}
	if len(head) != len(want) {
		return nil, fmt.Errorf("bad header: want %s", strings.Join(want, ","))
	}
	for i := range want {
		if !strings.EqualFold(strings.TrimSpace(head[i]), want[i]) {
			return nil, fmt.Errorf("bad header: want %s", strings.Join(want, ","))
		}
	}

	var recs [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv parse error: %w", err)
		}
		recs = append(recs, rec)
		if len(recs) > MaxImportRows {
			return nil, fmt.Errorf("import file exceeds the %d row limit", MaxImportRows)
		}
	}
	return recs, nil
}

func (s *invSvc) plan(table service.Table, data []byte) ([]op, error) {
	recs, err := readRecords(data, header(table))
	if err != nil {
		return nil, err
	}
	switch table {
	case service.TableBatches:
		return s.planBatches(recs)
	case service.TableMovements:
		return s.planMovements(recs)
	default:
		return s.planItems(recs)
	}
}

func (s *invSvc) planItems(recs [][]string) ([]op, error) {
	existing, err := s.r.ItemsByKey()
	if err != nil {
		return nil, err
	}
	seen := map[string]int{}
	ops := make([]op, 0, len(recs))
	for i, rec := range recs {
		line := i + 1
		row, perr := parseItemRow(rec)
		if perr != nil {
			ops = append(ops, invalidOp(line, rec, perr))
			continue
		}
		if first, dup := seen[row.ExternalKey]; dup {
			ops = append(ops, op{diff: service.RowDiff{Line: line, ExternalKey: row.ExternalKey, Action: service.ActionInvalid,
				Reason: fmt.Sprintf("duplicate external_key (first at row %d)", first)}})
			continue
		}
		seen[row.ExternalKey] = line

		cur, found := existing[row.ExternalKey]
		switch {
		case !found:
			r := row
			ops = append(ops, op{diff: service.RowDiff{Line: line, ExternalKey: r.ExternalKey, Action: service.ActionAdd},
				commit: func() error { return s.r.CreateItem(&r) }})
		case itemEqual(cur, row):
			ops = append(ops, op{diff: service.RowDiff{Line: line, ExternalKey: row.ExternalKey, Action: service.ActionSkip}})
		default:
			r := row
			r.ItemID = cur.ItemID
			r.CreatedAt = cur.CreatedAt
			ops = append(ops, op{diff: service.RowDiff{Line: line, ExternalKey: r.ExternalKey, Action: service.ActionUpdate},
				commit: func() error { return s.r.UpdateItem(&r) }})
		}
	}
	return ops, nil
}

func (s *invSvc) planBatches(recs [][]string) ([]op, error) {
	existing, err := s.r.BatchesByKey()
	if err != nil {
		return nil, err
	}
	seen := map[string]int{}
	ops := make([]op, 0, len(recs))
	for i, rec := range recs {
		line := i + 1
		row, perr := parseBatchRow(rec)
		if perr != nil {
			ops = append(ops, invalidOp(line, rec, perr))
			continue
		}
		if first, dup := seen[row.ExternalKey]; dup {
			ops = append(ops, op{diff: service.RowDiff{Line: line, ExternalKey: row.ExternalKey, Action: service.ActionInvalid,
				Reason: fmt.Sprintf("duplicate external_key (first at row %d)", first)}})
			continue
		}
		seen[row.ExternalKey] = line

		cur, found := existing[row.ExternalKey]
		switch {
		case !found:
			r := row
			ops = append(ops, op{diff: service.RowDiff{Line: line, ExternalKey: r.ExternalKey, Action: service.ActionAdd},
				commit: func() error { return s.r.CreateBatch(&r) }})
		case batchEqual(cur, row):
			ops = append(ops, op{diff: service.RowDiff{Line: line, ExternalKey: row.ExternalKey, Action: service.ActionSkip}})
		default:
			r := row
			r.BatchID = cur.BatchID
			r.CreatedAt = cur.CreatedAt
			ops = append(ops, op{diff: service.RowDiff{Line: line, ExternalKey: r.ExternalKey, Action: service.ActionUpdate},
				commit: func() error { return s.r.UpdateBatch(&r) }})
		}
	}
	return ops, nil
}

func (s *invSvc) planMovements(recs [][]string) ([]op, error) {
	existing, err := s.r.MovementsByKey()
	if err != nil {
		return nil, err
	}
	seen := map[string]int{}
	ops := make([]op, 0, len(recs))
	for i, rec := range recs {
		line := i + 1
		row, perr := parseMovementRow(rec)
		if perr != nil {
			ops = append(ops, invalidOp(line, rec, perr))
			continue
		}
		if first, dup := seen[row.ExternalKey]; dup {
			ops = append(ops, op{diff: service.RowDiff{Line: line, ExternalKey: row.ExternalKey, Action: service.ActionInvalid,
				Reason: fmt.Sprintf("duplicate external_key (first at row %d)", first)}})
			continue
		}
		seen[row.ExternalKey] = line

		cur, found := existing[row.ExternalKey]
		switch {
		case !found:
			r := row
			ops = append(ops, op{diff: service.RowDiff{Line: line, ExternalKey: r.ExternalKey, Action: service.ActionAdd},
				commit: func() error { return s.r.CreateMovement(&r) }})
		case movementEqual(cur, row):
			ops = append(ops, op{diff: service.RowDiff{Line: line, ExternalKey: row.ExternalKey, Action: service.ActionSkip}})
		default:
			r := row
			r.MovementID = cur.MovementID
			r.CreatedAt = cur.CreatedAt
			ops = append(ops, op{diff: service.RowDiff{Line: line, ExternalKey: r.ExternalKey, Action: service.ActionUpdate},
				commit: func() error { return s.r.UpdateMovement(&r) }})
		}
	}
	return ops, nil
}

func invalidOp(line int, rec []string, perr error) op {
	key := ""
	if len(rec) > 0 {
		key = strings.TrimSpace(rec[0])
	}
	return op{diff: service.RowDiff{Line: line, ExternalKey: key, Action: service.ActionInvalid, Reason: perr.Error()}}
}

func assemble(table service.Table, ops []op) *service.Preview {
	p := &service.Preview{Table: table, TotalRows: len(ops)}
	for _, o := range ops {
		p.Diffs = append(p.Diffs, o.diff)
		switch o.diff.Action {
		case service.ActionAdd:
			p.Summary.ToAdd++
		case service.ActionUpdate:
			p.Summary.ToUpdate++
		case service.ActionSkip:
			p.Summary.ToSkip++
		case service.ActionInvalid:
			p.InvalidRows++
		}
	}
	p.CanProceed = p.InvalidRows == 0
	return p
}

func (s *invSvc) Preview(table service.Table, r io.Reader) (*service.Preview, error) {
	data, err := readGated(r)
	if err != nil {
		return nil, err
	}
	ops, err := s.plan(table, data)
	if err != nil {
		return nil, err
	}
	return assemble(table, ops), nil
}

func (s *invSvc) Import(table service.Table, r io.Reader) (*service.Result, error) {
	data, err := readGated(r)
	if err != nil {
		return nil, err
	}
	ops, err := s.plan(table, data)
	if err != nil {
		return nil, err
	}
	preview := assemble(table, ops)
	if !preview.CanProceed {
		return nil, fmt.Errorf("import blocked: %d invalid row(s)", preview.InvalidRows)
	}

	res := &service.Result{Table: table}
	for _, o := range ops {
		switch o.diff.Action {
		case service.ActionAdd:
			if err := o.commit(); err != nil {
				return nil, fmt.Errorf("row %d (%s): %w", o.diff.Line, o.diff.ExternalKey, err)
			}
			res.Added++
		case service.ActionUpdate:
			if err := o.commit(); err != nil {
				return nil, fmt.Errorf("row %d (%s): %w", o.diff.Line, o.diff.ExternalKey, err)
			}
			res.Updated++
		case service.ActionSkip:
			res.Skipped++
		}
	}
	return res, nil
}

func (s *invSvc) ExportCSV(table service.Table) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	w.UseCRLF = true

	switch table {
	case service.TableBatches:
		rows, err := s.r.ListBatches()
		if err != nil {
			return nil, err
		}
		if err := w.Write(batchHeader); err != nil {
			return nil, err
		}
		for _, b := range rows {
			if err := w.Write(batchRecord(b)); err != nil {
				return nil, err
			}
		}
	case service.TableMovements:
		rows, err := s.r.ListMovements()
		if err != nil {
			return nil, err
		}
		if err := w.Write(movementHeader); err != nil {
			return nil, err
		}
		for _, m := range rows {
			if err := w.Write(movementRecord(m)); err != nil {
				return nil, err
			}
		}
	default:
		rows, err := s.r.ListItems()
		if err != nil {
			return nil, err
		}
		if err := w.Write(itemHeader); err != nil {
			return nil, err
		}
		for _, it := range rows {
			if err := w.Write(itemRecord(it)); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *invSvc) ExportWorkbook() ([]byte, error) {
	items, err := s.r.ListItems()
	if err != nil {
		return nil, err
	}
	batches, err := s.r.ListBatches()
	if err != nil {
		return nil, err
	}
	movements, err := s.r.ListMovements()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	writeSheet := func(name string, head []string, rows [][]string) error {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
		cells := make([]any, len(head))
		for i, h := range head {
			cells[i] = h
		}
		if err := f.SetSheetRow(name, "A1", &cells); err != nil {
			return err
		}
		for i, row := range rows {
			vals := make([]any, len(row))
			for j, v := range row {
				vals[j] = v
			}
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(name, cell, &vals); err != nil {
				return err
			}
		}
		return nil
	}

	itemRows := make([][]string, len(items))
	for i, it := range items {
		itemRows[i] = itemRecord(it)
	}
	batchRows := make([][]string, len(batches))
	for i, b := range batches {
		batchRows[i] = batchRecord(b)
	}
	moveRows := make([][]string, len(movements))
	for i, m := range movements {
		moveRows[i] = movementRecord(m)
	}

	if err := writeSheet("Items", itemHeader, itemRows); err != nil {
		return nil, err
	}
	if err := writeSheet("Batches", batchHeader, batchRows); err != nil {
		return nil, err
	}
	if err := writeSheet("Movements", movementHeader, moveRows); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
