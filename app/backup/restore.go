package backup

import (
	"fmt"

	"gritline/global"

	"gorm.io/gorm"
)

type TableResult struct {
	Inserted int
	Skipped  int
	Failed   int
}

type RestoreResult struct {
	Tables map[string]TableResult
}

func (r RestoreResult) totals() (inserted, skipped, failed int) {
	for _, t := range r.Tables {
		inserted += t.Inserted
		skipped += t.Skipped
		failed += t.Failed
	}
	return
}

// Message is the human-readable summary returned to the admin dashboard.
func (r RestoreResult) Message() string {
	inserted, skipped, failed := r.totals()
	if skipped == 0 && failed == 0 {
		return fmt.Sprintf("Restored %d tables, %d rows", len(r.Tables), inserted)
	}
	return fmt.Sprintf("Restored %d tables, %d rows (%d skipped, %d failed)", len(r.Tables), inserted, skipped, failed)
}

// Restore inserts every row of the snapshot into the live tables, in registry
// order. It is additive only: existing rows are never deleted or overwritten.
// Duplicate-key conflicts are expected and skipped, which also makes a second
// restore of the same snapshot a no-op. Table names in the document that are
// not in the registry are ignored, and snapshot columns the live schema no
// longer has are dropped before insert. A row failing for any other reason is
// logged and counted; the restore moves on to the next row.
func Restore(db *gorm.DB, snap *Snapshot) (RestoreResult, error) {
	res := RestoreResult{Tables: make(map[string]TableResult)}
	for _, t := range Registry() {
		rows, ok := snap.Tables[t.Name]
		if !ok {
			continue
		}
		cols, err := t.LiveColumns(db)
		if err != nil {
			return res, err
		}
		var tr TableResult
		for _, row := range rows {
			outcome := t.InsertRow(db, FilterColumns(row, cols))
			switch outcome.Status {
			case Inserted:
				tr.Inserted++
			case SkippedDuplicate:
				tr.Skipped++
			case FailedInsert:
				tr.Failed++
				global.Logger.Warn().Str("table", t.Name).Err(outcome.Err).Msg("restore row failed")
			}
		}
		res.Tables[t.Name] = tr
	}
	return res, nil
}
