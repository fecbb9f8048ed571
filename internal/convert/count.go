package convert

// CountRecords counts the non-blank data rows of a CSV file: exactly one
// header row is skipped, then every row with at least one non-blank cell
// counts. The blank predicate is the one TabularToDocument filters with,
// so the pre-flight count always matches what conversion will keep.
func CountRecords(tabularPath string) (int, error) {
	rows, err := readTabular(tabularPath)
	if err != nil {
		return 0, err
	}

	if len(rows) > 0 {
		rows = rows[1:]
	}

	count := 0

	for _, row := range rows {
		if !isBlankRow(row) {
			count++
		}
	}

	return count, nil
}
