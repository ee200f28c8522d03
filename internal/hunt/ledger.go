package hunt

// TreasureLedger keeps per-value counts of the treasures on the grid.
type TreasureLedger struct {
	counts [MaxTreasureValue - MinTreasureValue + 1]int
}

func (l *TreasureLedger) add(value int) {
	l.counts[value-MinTreasureValue]++
}

func (l *TreasureLedger) remove(value int) {
	l.counts[value-MinTreasureValue]--
}

// Count returns how many treasures of the given value remain.
func (l *TreasureLedger) Count(value int) int {
	if !ValidTreasureValue(value) {
		return 0
	}
	return l.counts[value-MinTreasureValue]
}

// Total returns the number of treasures remaining across all values.
func (l *TreasureLedger) Total() int {
	total := 0
	for _, n := range l.counts {
		total += n
	}
	return total
}

// Counts returns a fresh value → count map covering every treasure value.
func (l *TreasureLedger) Counts() map[int]int {
	m := make(map[int]int, len(l.counts))
	for _, v := range TreasureValues {
		m[v] = l.Count(v)
	}
	return m
}
