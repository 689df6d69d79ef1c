package pacing

import "container/heap"

// An Occurrence is one concrete time-windowed instance of an Event. It is
// active over the half-open window [Start, End). A periodic event produces a
// sequence of occurrences with increasing Index.
type Occurrence struct {
	ID    string
	Event Event
	Index int
	Start VTimeInSec
	End   VTimeInSec
}

func makeOccurrence(e Event, index int) Occurrence {
	start := e.Start + VTimeInSec(index)*e.Period

	return Occurrence{
		ID:    GetIDGenerator().Generate(),
		Event: e,
		Index: index,
		Start: start,
		End:   start + e.Duration,
	}
}

func (o Occurrence) contains(t VTimeInSec) bool {
	return o.Start <= t && t < o.End
}

// hasNext tells if the occurrence's event recurs after this occurrence.
func (o Occurrence) hasNext() bool {
	if !o.Event.IsPeriodic() {
		return false
	}

	return o.Event.Multiplier == 0 || o.Index+1 < o.Event.Multiplier
}

func (o Occurrence) next() Occurrence {
	return makeOccurrence(o.Event, o.Index+1)
}

// occurrenceQueue is a queue of pending occurrences ordered by start time.
type occurrenceQueue struct {
	occurrences occurrenceHeap
}

func newOccurrenceQueue() *occurrenceQueue {
	q := &occurrenceQueue{
		occurrences: make(occurrenceHeap, 0),
	}
	heap.Init(&q.occurrences)

	return q
}

func (q *occurrenceQueue) Push(o Occurrence) {
	heap.Push(&q.occurrences, o)
}

// Pop returns the occurrence with the earliest start time and removes it
// from the queue.
func (q *occurrenceQueue) Pop() Occurrence {
	return heap.Pop(&q.occurrences).(Occurrence)
}

func (q *occurrenceQueue) Len() int {
	return q.occurrences.Len()
}

// Peek returns the occurrence at the front of the queue without removing it.
func (q *occurrenceQueue) Peek() Occurrence {
	return q.occurrences[0]
}

// AnyStartsAt tells if any pending occurrence starts at exactly time t.
func (q *occurrenceQueue) AnyStartsAt(t VTimeInSec) bool {
	for _, o := range q.occurrences {
		if o.Start == t {
			return true
		}
	}

	return false
}

func (q *occurrenceQueue) clone() *occurrenceQueue {
	c := &occurrenceQueue{
		occurrences: make(occurrenceHeap, len(q.occurrences)),
	}
	copy(c.occurrences, q.occurrences)

	return c
}

type occurrenceHeap []Occurrence

// Len returns the number of pending occurrences.
func (h occurrenceHeap) Len() int {
	return len(h)
}

// Less returns true if the i-th occurrence starts before the j-th one.
func (h occurrenceHeap) Less(i, j int) bool {
	return h[i].Start < h[j].Start
}

// Swap changes the position of two occurrences in the queue.
func (h occurrenceHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// Push adds an occurrence into the queue.
func (h *occurrenceHeap) Push(x interface{}) {
	o := x.(Occurrence)
	*h = append(*h, o)
}

// Pop removes and returns the next occurrence to start.
func (h *occurrenceHeap) Pop() interface{} {
	old := *h
	n := len(old)
	o := old[n-1]
	*h = old[0 : n-1]

	return o
}
