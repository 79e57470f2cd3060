package schedule

import "github.com/pearstand/pear-backend/pkg/types"

// Window lengths used by the calendar and prep board views.
const (
	CalendarWindowDays  = 7
	FortnightWindowDays = 14
	PrepBoardWindowDays = 2
)

// Partition is a calendar-window view over a set of orders: one bucket per
// day key plus an unscheduled lane. Buckets are keyed by YYYY-MM-DD strings
// and every key exists even when its bucket is empty.
type Partition[T any] struct {
	Keys        []string
	Buckets     map[string][]T
	Unscheduled []T
}

// New partitions items into windowDays consecutive day buckets starting at
// base. Items with a nil pickup date land in Unscheduled; items dated inside
// the window land in their day's bucket; items dated outside the window are
// dropped from the view (the caller fetches only the relevant range). Input
// order is preserved within each bucket and the input slice is never mutated,
// so partitioning the same inputs twice yields identical membership.
func New[T any](base types.Date, windowDays int, items []T, pickupDate func(T) *types.Date) Partition[T] {
	p := Partition[T]{
		Keys:        Window(base, windowDays),
		Buckets:     make(map[string][]T, windowDays),
		Unscheduled: []T{},
	}
	for _, key := range p.Keys {
		p.Buckets[key] = []T{}
	}

	for _, item := range items {
		date := pickupDate(item)
		if date == nil {
			p.Unscheduled = append(p.Unscheduled, item)
			continue
		}
		key := date.String()
		if bucket, ok := p.Buckets[key]; ok {
			p.Buckets[key] = append(bucket, item)
		}
	}
	return p
}

// Window generates windowDays consecutive date keys starting at base,
// ascending.
func Window(base types.Date, windowDays int) []string {
	if windowDays <= 0 {
		return []string{}
	}
	keys := make([]string, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		keys = append(keys, base.AddDays(i).String())
	}
	return keys
}

// Contains reports whether key is one of the partition's day keys.
func (p Partition[T]) Contains(key string) bool {
	_, ok := p.Buckets[key]
	return ok
}

// Len returns the total number of items across all buckets and the
// unscheduled lane.
func (p Partition[T]) Len() int {
	n := len(p.Unscheduled)
	for _, bucket := range p.Buckets {
		n += len(bucket)
	}
	return n
}
