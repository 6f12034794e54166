package datalist

import (
	"fmt"
	"slices"
	"time"
)

// sortKey is one rank of the priority map.
type sortKey struct {
	column    int
	ascending bool
	valueType ValueType
}

// sortKeys builds the priority map from the columns' current ranks, in rank
// order. Columns whose type has no ordering are left out. Two columns with
// the same rank are an error.
func sortKeys(cols *ColumnSet) ([]sortKey, error) {
	byRank := make(map[int]sortKey)
	for i, c := range cols.All() {
		if c.priority < 0 || !c.valueType.Sortable() {
			continue
		}
		if prev, dup := byRank[c.priority]; dup {
			return nil, fmt.Errorf("%w: rank %d held by columns %d and %d",
				ErrPriorityCollision, c.priority, prev.column, i)
		}
		byRank[c.priority] = sortKey{column: i, ascending: c.ascending, valueType: c.valueType}
	}

	ranks := make([]int, 0, len(byRank))
	for r := range byRank {
		ranks = append(ranks, r)
	}
	slices.Sort(ranks)
	keys := make([]sortKey, len(ranks))
	for i, r := range ranks {
		keys[i] = byRank[r]
	}
	return keys, nil
}

// compareRows compares two rows key by key, moving to the next rank only on
// a tie. A descending key negates the whole per-key result, nulls included.
func compareRows(keys []sortKey, a, b *Row) (int, error) {
	for _, k := range keys {
		if !k.valueType.Sortable() {
			return 0, fmt.Errorf("%w: column %d (%s)", ErrUnsortable, k.column, k.valueType)
		}
		av, bv := a.Value(k.column), b.Value(k.column)
		if !av.conforms(k.valueType) || !bv.conforms(k.valueType) {
			return 0, fmt.Errorf("%w: column %d declared %s", ErrTypeMismatch, k.column, k.valueType)
		}
		c, err := Compare(av, bv)
		if err != nil {
			return 0, fmt.Errorf("column %d: %w", k.column, err)
		}
		if c != 0 {
			if !k.ascending {
				c = -c
			}
			return c, nil
		}
	}
	return 0, nil
}

// Sort orders all rows by the ranked columns. With no ranked column it does
// nothing. The sort is stable. On error the row order is unchanged.
func (l *DataList) Sort() error {
	keys, err := sortKeys(l.cols)
	if err != nil {
		return fmt.Errorf("sort: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	l.settleEdit()

	start := time.Now()
	err = l.rows.Sort(func(a, b *Row) (int, error) {
		return compareRows(keys, a, b)
	})
	if err != nil {
		l.log.Error("sort failed", "err", err)
		return fmt.Errorf("sort: %w", err)
	}
	l.invalidate("sort")

	if listVerbose() {
		l.log.Debug("sorted", "rows", l.rows.Len(), "keys", len(keys), "elapsed", time.Since(start))
	}
	return nil
}
