package predict

// ReportRow is one line of the report table.
type ReportRow struct {
	Parameter   string
	Value       string
	NormalRange string
	Unit        string
}

// Report lists every entered value beside its reference range, in schema order.
func Report(r Result) []ReportRow {
	fields := Schema(r.Kind)
	rows := make([]ReportRow, 0, len(fields))
	for i, f := range fields {
		if i >= len(r.Features) {
			break
		}
		rows = append(rows, ReportRow{
			Parameter:   f.Label,
			Value:       FormatValue(f, r.Features[i]),
			NormalRange: f.NormalRange,
			Unit:        f.Unit,
		})
	}
	return rows
}
