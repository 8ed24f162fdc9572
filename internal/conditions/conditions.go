// Package conditions documents the 3.3.5 conditions system: which tables
// attach conditions (source types) and what each condition type tests.
// Rows with the same ElseGroup are ANDed, different ElseGroups are ORed.
package conditions

// SourceDoc describes one SourceTypeOrReferenceId value and how the
// SourceGroup and SourceEntry columns are keyed for it.
type SourceDoc struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	SourceGroup string           `json:"source_group"`
	SourceEntry string           `json:"source_entry"`
	SourceID    string           `json:"source_id,omitempty"`
	Targets     map[int64]string `json:"condition_targets"`
	Notes       string           `json:"notes,omitempty"`
}

// TypeDoc describes one ConditionTypeOrReference value and the meaning of
// its three value columns.
type TypeDoc struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Value1      string `json:"value1"`
	Value2      string `json:"value2"`
	Value3      string `json:"value3"`
	Notes       string `json:"notes,omitempty"`
}

// TypeName returns the enum name of a condition type, UNKNOWN when the id
// is not documented.
func TypeName(id int64) string {
	if d, ok := Types[id]; ok {
		return d.Name
	}
	return "UNKNOWN"
}

// SourceTypeName returns the enum name of a source type, UNKNOWN when the
// id is not documented.
func SourceTypeName(id int64) string {
	if d, ok := SourceTypes[id]; ok {
		return d.Name
	}
	return "UNKNOWN"
}

// CommonTypeIDs is the subset of condition types worth showing first; the
// explain tool returns these when asked for a general overview.
var CommonTypeIDs = []int64{1, 2, 5, 6, 8, 9, 12, 15, 16, 27, 29, 30, 36, 47}
