package core

import "testing"

func TestRefLaneFirstSegmentIsOwnLane(t *testing.T) {
	pos := &Position{Pass: 0, Lane: 2, Slice: 0}
	if got := refLane(pos, 4, 3); got != 2 {
		t.Errorf("refLane in pass 0 slice 0 = %d, want own lane 2", got)
	}
}

func TestRefLaneLaterUsesJ2(t *testing.T) {
	pos := &Position{Pass: 0, Lane: 2, Slice: 1}
	if got := refLane(pos, 4, 3); got != 3%4 {
		t.Errorf("refLane = %d, want J2 mod lanes = %d", got, 3%4)
	}
}

func TestIndexAlphaInBounds(t *testing.T) {
	lanes := uint32(4)
	laneLen := uint32(64)
	segmentLen := laneLen / SyncPoints

	for pass := uint32(0); pass < 2; pass++ {
		for slice := uint32(0); slice < SyncPoints; slice++ {
			for lane := uint32(0); lane < lanes; lane++ {
				start := uint32(0)
				if pass == 0 && slice == 0 {
					start = 2
				}
				for index := start; index < segmentLen; index++ {
					pos := &Position{Pass: pass, Lane: lane, Slice: slice, Index: index}
					for _, pr := range []uint64{0, 1, 0xFFFFFFFFFFFFFFFF, 0x0102030405060708} {
						refL, refC := indexAlpha(pos, lanes, pr, segmentLen, laneLen)
						if refL >= lanes {
							t.Fatalf("refLane %d out of range [0,%d)", refL, lanes)
						}
						if refC >= laneLen {
							t.Fatalf("refCol %d out of range [0,%d)", refC, laneLen)
						}
					}
				}
			}
		}
	}
}

// TestIndexAlphaNoSelfOrFuture checks RFC 9106 section 3.2's indexing
// rule: in the first segment of the first pass, a block never
// references a not-yet-written block of its own lane (the only lane it
// can reference at all).
func TestIndexAlphaNoSelfOrFuture(t *testing.T) {
	lanes := uint32(1)
	laneLen := uint32(32)
	segmentLen := laneLen / SyncPoints

	for index := uint32(2); index < segmentLen; index++ {
		pos := &Position{Pass: 0, Lane: 0, Slice: 0, Index: index}
		for _, pr := range []uint64{0, 1, 42, 0xFFFFFFFF} {
			refL, refC := indexAlpha(pos, lanes, pr, segmentLen, laneLen)
			if refL != 0 {
				t.Fatalf("cross-lane reference in first segment of first pass: %d", refL)
			}
			if refC >= index {
				t.Fatalf("reference column %d is not strictly before producing index %d", refC, index)
			}
		}
	}
}
