package entity

import "container/heap"

// Handle is a stable index into a Pool. Handles stay valid until released.
type Handle int

// NoHandle is returned when a pool has no free slot
const NoHandle Handle = -1

// Pool is a fixed-capacity slot array with recycled slots.
// Free slots are kept in a min-heap so Acquire always hands out the
// lowest free index, matching a linear first-free scan.
type Pool[T any] struct {
	items []T
	live  []bool
	free  freeList
	count int
}

// NewPool creates a pool of capacity slots, each initialized by init(i)
func NewPool[T any](capacity int, init func(i int) T) *Pool[T] {
	p := &Pool[T]{
		items: make([]T, capacity),
		live:  make([]bool, capacity),
		free:  make(freeList, 0, capacity),
	}
	for i := 0; i < capacity; i++ {
		if init != nil {
			p.items[i] = init(i)
		}
		p.free = append(p.free, i)
	}
	heap.Init(&p.free)
	return p
}

// Acquire claims the lowest free slot
func (p *Pool[T]) Acquire() (Handle, *T, bool) {
	if p.free.Len() == 0 {
		return NoHandle, nil, false
	}
	i := heap.Pop(&p.free).(int)
	p.live[i] = true
	p.count++
	return Handle(i), &p.items[i], true
}

// Release returns a slot to the pool. Releasing a free slot is a no-op.
func (p *Pool[T]) Release(h Handle) {
	if !p.Live(h) {
		return
	}
	p.live[h] = false
	p.count--
	heap.Push(&p.free, int(h))
}

// Live reports whether h refers to an acquired slot
func (p *Pool[T]) Live(h Handle) bool {
	return h >= 0 && int(h) < len(p.items) && p.live[h]
}

// Get returns the slot for h, or nil when h is not live
func (p *Pool[T]) Get(h Handle) *T {
	if !p.Live(h) {
		return nil
	}
	return &p.items[h]
}

// Each calls fn for every live slot in ascending index order
func (p *Pool[T]) Each(fn func(h Handle, item *T)) {
	for i := range p.items {
		if p.live[i] {
			fn(Handle(i), &p.items[i])
		}
	}
}

// Len returns the number of live slots
func (p *Pool[T]) Len() int { return p.count }

// Cap returns the pool capacity
func (p *Pool[T]) Cap() int { return len(p.items) }

type freeList []int

func (f freeList) Len() int           { return len(f) }
func (f freeList) Less(i, j int) bool { return f[i] < f[j] }
func (f freeList) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *freeList) Push(x any) { *f = append(*f, x.(int)) }

func (f *freeList) Pop() any {
	old := *f
	n := len(old)
	x := old[n-1]
	*f = old[:n-1]
	return x
}
