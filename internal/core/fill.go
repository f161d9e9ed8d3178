package core

// Hook is called once after every block the fill driver produces, with
// the running count and the total number of blocks the whole fill will
// produce. Callers use it to drive progress reporting and cooperative
// yielding; it may be nil. Returning abort=true stops the fill early,
// once the in-flight block finishes.
type Hook func(produced, total uint32) (abort bool)

// Fill runs all `iterations` passes over the matrix, selecting
// data-dependent or data-independent addressing per (variant, pass,
// slice) and writing each block with fillBlock, per RFC 9106 section
// 3.4, the Argon2 algorithm core.
//
// Lanes are processed sequentially within each segment, matching the
// single-threaded reference schedule RFC 9106 describes.
func Fill(m *Matrix, variant Variant, version, iterations uint32, hook Hook) (aborted bool) {
	segmentLen := m.LaneLen / SyncPoints
	total := m.LaneLen * m.Lanes * iterations
	var produced uint32

	var ab addressBlock

passLoop:
	for pass := uint32(0); pass < iterations; pass++ {
		needXor := pass != 0 && version >= 0x13

		for slice := uint32(0); slice < SyncPoints; slice++ {
			independent := dataIndependent(variant, pass, slice)

			for lane := uint32(0); lane < m.Lanes; lane++ {
				pos := Position{Pass: pass, Lane: lane, Slice: slice}

				startIndex := uint32(0)
				if pass == 0 && slice == 0 {
					startIndex = 2
					produced += 2
				}

				if independent {
					ab.reset(&pos, m.LaneLen*m.Lanes, iterations, variant)
					if pass == 0 && slice == 0 {
						// Prime the address block covering indices
						// [2, QWordsInBlock) before the loop, since the
						// loop's own index%QWordsInBlock==0 refresh
						// point falls at index 0, which this segment
						// skips (the first two blocks are seeded
						// directly from H0).
						ab.refresh()
					}
				}

				for index := startIndex; index < segmentLen; index++ {
					pos.Index = index

					offset := lane*m.LaneLen + slice*segmentLen + index
					var prevOffset uint32
					if offset%m.LaneLen == 0 {
						prevOffset = offset + m.LaneLen - 1
					} else {
						prevOffset = offset - 1
					}

					var pseudoRand uint64
					if independent {
						pseudoRand = ab.wordAt(index)
					} else {
						pseudoRand = m.Blocks[prevOffset][0]
					}

					refL, refC := indexAlpha(&pos, m.Lanes, pseudoRand, segmentLen, m.LaneLen)
					refOffset := refL*m.LaneLen + refC

					fillBlock(&m.Blocks[prevOffset], &m.Blocks[refOffset], &m.Blocks[offset], needXor)

					produced++
					if hook != nil && hook(produced, total) {
						aborted = true
						break passLoop
					}
				}
			}
		}
	}

	ab.release()
	return aborted
}
