// Implements the contiguous memory pool: an address-ordered segment list
// with best-fit allocation and coalescing release.

package sim

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Segment is a contiguous run of memory, either free or owned by one process.
type Segment struct {
	Owner   string // owning process ID; empty when free
	Address int    // offset into the pool
	Size    int
	Free    bool
}

func (s Segment) end() int { return s.Address + s.Size }

// SegmentList partitions a fixed pool into address-ordered segments.
// Invariants after every exported call:
//   - segments are contiguous, start at 0 and sum to Total
//   - no two neighbouring segments are both free
//
// Structural edits go through split and mergeNext only.
type SegmentList struct {
	Total    int
	segments []Segment
}

// NewSegmentList creates a pool of total units held by a single free segment.
func NewSegmentList(total int) *SegmentList {
	return &SegmentList{
		Total:    total,
		segments: []Segment{{Address: 0, Size: total, Free: true}},
	}
}

// Segments returns a copy of the segments in address order.
func (sl *SegmentList) Segments() []Segment {
	out := make([]Segment, len(sl.segments))
	copy(out, sl.segments)
	return out
}

// Len returns the number of segments.
func (sl *SegmentList) Len() int {
	return len(sl.segments)
}

// bestFit returns the index of the smallest free segment holding at least size
// units, preferring the lowest address on ties. Returns -1 if none qualifies.
func (sl *SegmentList) bestFit(size int) int {
	best := -1
	for i, seg := range sl.segments {
		if !seg.Free || seg.Size < size {
			continue
		}
		if best == -1 || seg.Size < sl.segments[best].Size {
			best = i
		}
	}
	return best
}

// split carves an occupied head of size units out of the free segment at i.
// The remainder, if any, stays free directly after it.
func (sl *SegmentList) split(i int, owner string, size int) {
	seg := sl.segments[i]
	head := Segment{Owner: owner, Address: seg.Address, Size: size}
	if seg.Size == size {
		sl.segments[i] = head
		return
	}
	rest := Segment{Address: seg.Address + size, Size: seg.Size - size, Free: true}
	sl.segments = append(sl.segments, Segment{})
	copy(sl.segments[i+2:], sl.segments[i+1:])
	sl.segments[i] = head
	sl.segments[i+1] = rest
}

// mergeNext folds the segment at i+1 into the segment at i.
func (sl *SegmentList) mergeNext(i int) {
	sl.segments[i].Size += sl.segments[i+1].Size
	sl.segments = append(sl.segments[:i+1], sl.segments[i+2:]...)
}

// Allocate reserves size units for id using best fit.
// It returns false, leaving the pool untouched, when no free segment is large enough;
// the caller is expected to retry on a later frame.
// A zero size is not rejected: it places an empty occupied segment at the chosen address.
func (sl *SegmentList) Allocate(id string, size int) bool {
	i := sl.bestFit(size)
	if i < 0 {
		logrus.Debugf("allocate %s: no free segment of %d units (largest %d)", id, size, sl.LargestFree())
		return false
	}
	sl.split(i, id, size)
	logrus.Debugf("allocate %s: %d units at %d", id, size, sl.segments[i].Address)
	return true
}

// Free releases the segment owned by id and coalesces it with free neighbours
// on both sides. Returns false if id owns no segment.
func (sl *SegmentList) Free(id string) bool {
	i := sl.find(id)
	if i < 0 {
		return false
	}
	sl.segments[i].Free = true
	sl.segments[i].Owner = ""
	if i+1 < len(sl.segments) && sl.segments[i+1].Free {
		sl.mergeNext(i)
	}
	if i > 0 && sl.segments[i-1].Free {
		sl.mergeNext(i - 1)
	}
	return true
}

func (sl *SegmentList) find(id string) int {
	for i, seg := range sl.segments {
		if !seg.Free && seg.Owner == id {
			return i
		}
	}
	return -1
}

// FreeSpace returns the total number of unallocated units.
func (sl *SegmentList) FreeSpace() int {
	n := 0
	for _, seg := range sl.segments {
		if seg.Free {
			n += seg.Size
		}
	}
	return n
}

// LargestFree returns the size of the biggest free segment, or 0 if the pool is full.
func (sl *SegmentList) LargestFree() int {
	n := 0
	for _, seg := range sl.segments {
		if seg.Free && seg.Size > n {
			n = seg.Size
		}
	}
	return n
}

// Check verifies the partition and no-adjacent-free invariants.
func (sl *SegmentList) Check() error {
	addr := 0
	for i, seg := range sl.segments {
		if seg.Address != addr {
			return fmt.Errorf("segment %d starts at %d, want %d", i, seg.Address, addr)
		}
		if seg.Size < 0 {
			return fmt.Errorf("segment %d has negative size %d", i, seg.Size)
		}
		if i > 0 && seg.Free && sl.segments[i-1].Free {
			return fmt.Errorf("segments %d and %d are both free", i-1, i)
		}
		addr = seg.end()
	}
	if addr != sl.Total {
		return fmt.Errorf("segments cover %d units, pool has %d", addr, sl.Total)
	}
	return nil
}

// Render returns the console table of segments: address, owner or "free", size.
func (sl *SegmentList) Render() string {
	const rule = "         -----------------------\n"
	var sb strings.Builder
	sb.WriteString(rule)
	for i, seg := range sl.segments {
		if i > 0 {
			sb.WriteString(rule)
		}
		if seg.Free {
			fmt.Fprintf(&sb, "%8d |%14d  free|\n", seg.Address, seg.Size)
		} else {
			fmt.Fprintf(&sb, "%8d |%10s|%10d|\n", seg.Address, seg.Owner, seg.Size)
		}
	}
	sb.WriteString(rule)
	return sb.String()
}

func (sl *SegmentList) String() string {
	parts := make([]string, len(sl.segments))
	for i, seg := range sl.segments {
		owner := seg.Owner
		if seg.Free {
			owner = "free"
		}
		parts[i] = fmt.Sprintf("%d:%s:%d", seg.Address, owner, seg.Size)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
