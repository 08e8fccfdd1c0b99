// Package models defines the record schema shared by the normalizer pipeline.
package models

// Field names as they appear in the CSV header.
const (
	FieldTimestamp     = "Timestamp"
	FieldAddress       = "Address"
	FieldZIP           = "ZIP"
	FieldFullName      = "FullName"
	FieldFooDuration   = "FooDuration"
	FieldBarDuration   = "BarDuration"
	FieldTotalDuration = "TotalDuration"
	FieldNotes         = "Notes"
)

// InputFields lists the columns every input stream must declare.
var InputFields = []string{
	FieldTimestamp,
	FieldAddress,
	FieldZIP,
	FieldFullName,
	FieldFooDuration,
	FieldBarDuration,
	FieldNotes,
}

// OutputFields lists the output columns in their fixed emit order.
var OutputFields = []string{
	FieldTimestamp,
	FieldAddress,
	FieldZIP,
	FieldFullName,
	FieldFooDuration,
	FieldBarDuration,
	FieldTotalDuration,
	FieldNotes,
}

// Record holds the raw field values of a single input row, keyed by schema
// position rather than by input column order.
type Record struct {
	Timestamp   string
	Address     string
	ZIP         string
	FullName    string
	FooDuration string
	BarDuration string
	Notes       string
}

// NewRecord builds a Record from a raw CSV row using the header's
// column-name-to-position mapping.
func NewRecord(row []string, columns map[string]int) *Record {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}

		return row[idx]
	}

	return &Record{
		Timestamp:   field(FieldTimestamp),
		Address:     field(FieldAddress),
		ZIP:         field(FieldZIP),
		FullName:    field(FieldFullName),
		FooDuration: field(FieldFooDuration),
		BarDuration: field(FieldBarDuration),
		Notes:       field(FieldNotes),
	}
}

// NormalizedRecord holds the normalized field values of a single output row.
type NormalizedRecord struct {
	Timestamp     string
	Address       string
	ZIP           string
	FullName      string
	FooDuration   string
	BarDuration   string
	TotalDuration string
	Notes         string
}

// Strings returns the record's values in the fixed output column order.
func (r *NormalizedRecord) Strings() []string {
	return []string{
		r.Timestamp,
		r.Address,
		r.ZIP,
		r.FullName,
		r.FooDuration,
		r.BarDuration,
		r.TotalDuration,
		r.Notes,
	}
}
