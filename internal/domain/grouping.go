package domain

// RowGroup is a read-only display projection: the rows of one project, in
// insertion order. Grouping never reorders the underlying row sequence.
type RowGroup struct {
	ProjectID string
	Rows      []*AssignmentRow
}

// GroupRowsByProject groups rows by project for presentation. Groups appear
// in order of each project's first row; rows within a group keep their
// insertion order.
func GroupRowsByProject(ts *Timesheet) []RowGroup {
	if ts == nil {
		return nil
	}
	index := make(map[string]int)
	var groups []RowGroup
	for _, row := range ts.Rows {
		i, ok := index[row.ProjectID]
		if !ok {
			i = len(groups)
			index[row.ProjectID] = i
			groups = append(groups, RowGroup{ProjectID: row.ProjectID})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}
