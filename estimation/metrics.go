package estimation

import "strconv"

// Metric names, in the order they are reported.
const (
	TotalGatesName    = "total_gates"
	ReadHitDelayName  = "read_hit_delay"
	ReadMissDelayName = "read_miss_delay"
	WriteDelayName    = "write_delay"
)

// Metrics is the result of an estimation.
type Metrics struct {
	TotalGates    int
	ReadHitDelay  Delay
	ReadMissDelay Delay
	WriteDelay    Delay
}

// Entry is a named, formatted metric value.
type Entry struct {
	Name  string
	Value string
}

// Entries lists the metrics in reporting order.
func (m Metrics) Entries() []Entry {
	return []Entry{
		{Name: TotalGatesName, Value: strconv.Itoa(m.TotalGates)},
		{Name: ReadHitDelayName, Value: m.ReadHitDelay.String()},
		{Name: ReadMissDelayName, Value: m.ReadMissDelay.String()},
		{Name: WriteDelayName, Value: m.WriteDelay.String()},
	}
}

// Breakdown holds the per-structure terms that make up Metrics.
type Breakdown struct {
	DataArrayGates  int
	TagArrayGates   int
	ValidArrayGates int
	ComparatorGates int
	MuxGates        int

	ComparatorDelay Delay
	MuxDelay        Delay
	MemAccessDelay  Delay
	WriteDelay      Delay
}

// StorageGates returns the gates spent on the data, tag and valid arrays.
func (b Breakdown) StorageGates() int {
	return b.DataArrayGates + b.TagArrayGates + b.ValidArrayGates
}

// TotalGates returns the gates of the storage arrays, the comparator and the
// output mux.
func (b Breakdown) TotalGates() int {
	return b.StorageGates() + b.ComparatorGates + b.MuxGates
}

// Metrics folds the breakdown into the reported metrics.
func (b Breakdown) Metrics() Metrics {
	return Metrics{
		TotalGates:    b.TotalGates(),
		ReadHitDelay:  b.ComparatorDelay + b.MuxDelay,
		ReadMissDelay: b.MemAccessDelay,
		WriteDelay:    b.WriteDelay,
	}
}
