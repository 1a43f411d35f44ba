package entity

import "testing"

const benchSlots = 69

// linearSlots is the scan-for-first-dead layout the pool replaces
type linearSlots struct {
	live [benchSlots]bool
}

func (s *linearSlots) acquire() int {
	for i := range s.live {
		if !s.live[i] {
			s.live[i] = true
			return i
		}
	}
	return -1
}

func (s *linearSlots) release(i int) {
	s.live[i] = false
}

// Churn pattern: keep the pool nearly full and recycle the newest slot,
// which is the worst case for a linear scan.
func BenchmarkLinearScan_Churn(b *testing.B) {
	var s linearSlots
	for i := 0; i < benchSlots-1; i++ {
		s.acquire()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := s.acquire()
		s.release(h)
	}
}

func BenchmarkPool_Churn(b *testing.B) {
	p := NewPool[Projectile](benchSlots, nil)
	for i := 0; i < benchSlots-1; i++ {
		p.Acquire()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, _, _ := p.Acquire()
		p.Release(h)
	}
}

func BenchmarkPool_Each(b *testing.B) {
	p := NewPool[Projectile](benchSlots, nil)
	for i := 0; i < benchSlots; i += 2 {
		p.Acquire()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		p.Each(func(_ Handle, pr *Projectile) {
			sum += pr.Pos.X
		})
		_ = sum
	}
}
