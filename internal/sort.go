package internal

import "sort"

type StationCountTuple struct {
	Station string
	Count   int
}

// ByCount orders stations by descending count, ties by station code.
type ByCount []StationCountTuple

func (a ByCount) Len() int { return len(a) }
func (a ByCount) Less(i, j int) bool {
	if a[i].Count != a[j].Count {
		return a[i].Count > a[j].Count
	}
	return a[i].Station < a[j].Station
}
func (a ByCount) Swap(i, j int) { a[i], a[j] = a[j], a[i] }

func SortedUpdateCounts(stationCountMap map[string]int) []StationCountTuple {
	stationCounts := make([]StationCountTuple, len(stationCountMap))
	i := 0
	for key, value := range stationCountMap {
		stationCounts[i] = StationCountTuple{Station: key, Count: value}
		i++
	}

	sort.Sort(ByCount(stationCounts))
	return stationCounts
}
