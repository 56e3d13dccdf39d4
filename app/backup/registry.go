package backup

import (
	"errors"
	"fmt"

	"gritline/app/models"

	"gorm.io/gorm"
)

// Row is one table row as captured in a snapshot document.
type Row map[string]any

type InsertStatus int

const (
	Inserted InsertStatus = iota
	SkippedDuplicate
	FailedInsert
)

// InsertOutcome is the tagged result of a single row insert, so the restore
// engine branches on a status instead of driver error shapes.
type InsertOutcome struct {
	Status InsertStatus
	Err    error
}

// Table pairs a database table with the model used to resolve its live column
// set on restore.
type Table struct {
	Name  string
	Model any
}

// Registry is the fixed manifest of tables included in backups. Adding a table
// here is the only step needed to include it in future snapshots.
// backup_records itself is deliberately excluded: metadata about backups does
// not belong in a portable backup.
func Registry() []Table {
	return []Table{
		{Name: "users", Model: &models.User{}},
		{Name: "gallery_items", Model: &models.GalleryItem{}},
		{Name: "testimonials", Model: &models.Testimonial{}},
		{Name: "contact_submissions", Model: &models.ContactSubmission{}},
		{Name: "blog_posts", Model: &models.BlogPost{}},
	}
}

// TableNames returns the registry's table names in registry order.
func TableNames() []string {
	reg := Registry()
	names := make([]string, 0, len(reg))
	for _, t := range reg {
		names = append(names, t.Name)
	}
	return names
}

func (t Table) DumpRows(db *gorm.DB) ([]Row, error) {
	var raw []map[string]any
	if err := db.Table(t.Name).Find(&raw).Error; err != nil {
		return nil, fmt.Errorf("read table %s: %w", t.Name, err)
	}
	rows := make([]Row, len(raw))
	for i, r := range raw {
		rows[i] = Row(r)
	}
	return rows, nil
}

func (t Table) InsertRow(db *gorm.DB, row Row) InsertOutcome {
	if len(row) == 0 {
		return InsertOutcome{Status: FailedInsert, Err: errors.New("empty row")}
	}
	if err := db.Table(t.Name).Create(map[string]any(row)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return InsertOutcome{Status: SkippedDuplicate}
		}
		return InsertOutcome{Status: FailedInsert, Err: err}
	}
	return InsertOutcome{Status: Inserted}
}

// LiveColumns resolves the table's current column set from the database, used
// to drop columns a restored snapshot has but the live schema no longer does.
func (t Table) LiveColumns(db *gorm.DB) (map[string]bool, error) {
	types, err := db.Migrator().ColumnTypes(t.Model)
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", t.Name, err)
	}
	cols := make(map[string]bool, len(types))
	for _, ct := range types {
		cols[ct.Name()] = true
	}
	return cols, nil
}

// FilterColumns returns a copy of row limited to the given column set.
func FilterColumns(row Row, cols map[string]bool) Row {
	out := make(Row, len(row))
	for k, v := range row {
		if cols[k] {
			out[k] = v
		}
	}
	return out
}
