package game

// Collision buffers hold per-frame obstacle records in one flat float32
// slice with a fixed stride, one buffer per obstacle category. The caller
// rewrites the live region every frame before querying; the backing
// allocation persists and only ever grows. No base pointer crosses this
// API — writes go through bounds-checked Set, so a grow can never leave a
// caller holding a stale address.

// NoHit is returned by Test when no record overlaps the query.
const NoHit = -1

const obstacleMinCapacity = 16

type obstacleBuffer struct {
	data   []float32
	stride int
	capRec int // capacity in records, monotonically non-decreasing
}

// EnsureCapacity grows the buffer to hold at least n records. Capacity
// never shrinks and existing records survive a grow. Growth is geometric
// so a slowly rising obstacle count doesn't reallocate every frame.
// If the host cannot allocate, make panics; silent truncation would mean
// missed collisions, which is worse than crashing.
func (b *obstacleBuffer) EnsureCapacity(n int) {
	if n <= b.capRec {
		return
	}
	newCap := b.capRec
	if newCap < obstacleMinCapacity {
		newCap = obstacleMinCapacity
	}
	for newCap < n {
		newCap *= 2
	}
	grown := make([]float32, newCap*b.stride)
	copy(grown, b.data)
	b.data = grown
	b.capRec = newCap
}

// Cap returns the current capacity in records.
func (b *obstacleBuffer) Cap() int { return b.capRec }

// Records exposes the flat live region for bulk rewrites. The slice is
// only valid until the next EnsureCapacity call.
func (b *obstacleBuffer) Records() []float32 { return b.data }

// CircleBuffer stores stride-3 records: x, y, radius.
type CircleBuffer struct {
	obstacleBuffer
}

func NewCircleBuffer() *CircleBuffer {
	return &CircleBuffer{obstacleBuffer{stride: 3}}
}

// Set writes record i. Panics if i is outside the allocated capacity;
// callers size the buffer with EnsureCapacity first.
func (b *CircleBuffer) Set(i int, x, y, r float32) {
	o := i * 3
	b.data[o] = x
	b.data[o+1] = y
	b.data[o+2] = r
}

// Test scans records [0, count) and returns the lowest index whose circle
// overlaps the query circle, or NoHit. Ties go to insertion order, not
// distance. Squared-distance comparison: no sqrt in the per-frame loop.
// NaN coordinates never satisfy the comparison and therefore never hit.
func (b *CircleBuffer) Test(x, y, r float32, count int) int {
	if count == 0 || b.data == nil {
		return NoHit
	}
	for i := 0; i < count; i++ {
		o := i * 3
		dx := x - b.data[o]
		dy := y - b.data[o+1]
		rr := r + b.data[o+2]
		if dx*dx+dy*dy < rr*rr {
			return i
		}
	}
	return NoHit
}

// SphereBuffer stores stride-4 records: x, y, z, radius. Same contract as
// CircleBuffer, one extra axis.
type SphereBuffer struct {
	obstacleBuffer
}

func NewSphereBuffer() *SphereBuffer {
	return &SphereBuffer{obstacleBuffer{stride: 4}}
}

func (b *SphereBuffer) Set(i int, x, y, z, r float32) {
	o := i * 4
	b.data[o] = x
	b.data[o+1] = y
	b.data[o+2] = z
	b.data[o+3] = r
}

func (b *SphereBuffer) Test(x, y, z, r float32, count int) int {
	if count == 0 || b.data == nil {
		return NoHit
	}
	for i := 0; i < count; i++ {
		o := i * 4
		dx := x - b.data[o]
		dy := y - b.data[o+1]
		dz := z - b.data[o+2]
		rr := r + b.data[o+3]
		if dx*dx+dy*dy+dz*dz < rr*rr {
			return i
		}
	}
	return NoHit
}
