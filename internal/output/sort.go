// internal/output/sort.go
package output

import "sort"

// SortRows orders rows by read index, then by position within the read.
func SortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		ri, si := rows[i].Order()
		rj, sj := rows[j].Order()
		if ri != rj {
			return ri < rj
		}
		return si < sj
	})
}
