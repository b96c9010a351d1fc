package roster

import "sort"

// Count is the number of occurrences of one category value.
type Count struct {
	Value string
	N     int
}

// Frequency is a frequency table ordered by descending count, ties broken by
// ascending value.
type Frequency struct {
	Column string
	Counts []Count
}

// Total returns the sum of all counts.
func (f Frequency) Total() int {
	total := 0
	for _, c := range f.Counts {
		total += c.N
	}
	return total
}

// Values returns the category values in frequency order.
func (f Frequency) Values() []string {
	values := make([]string, len(f.Counts))
	for i, c := range f.Counts {
		values[i] = c.Value
	}
	return values
}

// Group is the inner frequency table for one outer category value.
type Group struct {
	Key    string
	Counts []Count
}

// GroupedFrequency counts inner values within each outer value. Groups are
// ordered by ascending key.
type GroupedFrequency struct {
	Outer  string
	Inner  string
	Groups []Group
}

// Empty reports whether no group has any counted value.
func (g GroupedFrequency) Empty() bool {
	return len(g.Groups) == 0
}

// Frequencies counts the non-null values of column.
func Frequencies(t Table, column string) (Frequency, error) {
	idx := t.Index(column)
	if idx < 0 {
		return Frequency{}, columnMissing(column)
	}
	tally := map[string]int{}
	for _, row := range t.Rows {
		if v := row[idx]; !IsNull(v) {
			tally[v]++
		}
	}
	return Frequency{Column: column, Counts: sortCounts(tally)}, nil
}

// GroupedFrequencies counts the non-null values of inner within each non-null
// value of outer. Outer values whose inner cells are all null are omitted.
func GroupedFrequencies(t Table, outer, inner string) (GroupedFrequency, error) {
	oi := t.Index(outer)
	if oi < 0 {
		return GroupedFrequency{}, columnMissing(outer)
	}
	ii := t.Index(inner)
	if ii < 0 {
		return GroupedFrequency{}, columnMissing(inner)
	}

	tallies := map[string]map[string]int{}
	for _, row := range t.Rows {
		key, value := row[oi], row[ii]
		if IsNull(key) || IsNull(value) {
			continue
		}
		tally, ok := tallies[key]
		if !ok {
			tally = map[string]int{}
			tallies[key] = tally
		}
		tally[value]++
	}

	keys := make([]string, 0, len(tallies))
	for key := range tallies {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	g := GroupedFrequency{Outer: outer, Inner: inner}
	for _, key := range keys {
		g.Groups = append(g.Groups, Group{Key: key, Counts: sortCounts(tallies[key])})
	}
	return g, nil
}

func sortCounts(tally map[string]int) []Count {
	counts := make([]Count, 0, len(tally))
	for value, n := range tally {
		counts = append(counts, Count{Value: value, N: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].Value < counts[j].Value
	})
	return counts
}
