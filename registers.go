package hll

// registerStore is the capability a register backing store must provide.
// The update and estimation algorithms are written against this interface
// so the two layouts share them.
type registerStore interface {
	// get returns the rank stored at index i
	get(i uint32) uint8

	// set stores rank at index i; a store with a narrow field width must
	// clamp the value, not truncate it
	set(i uint32, rank uint8)

	// size returns the number of registers
	size() uint32

	// bytes returns the memory footprint of the register array
	bytes() int

	// clear resets every register to zero without reallocating
	clear()
}

// standardRegisters stores one rank per machine word
type standardRegisters []uint32

func newStandardRegisters(m uint32) standardRegisters {
	return make(standardRegisters, m)
}

func (r standardRegisters) get(i uint32) uint8 {
	return uint8(r[i])
}

func (r standardRegisters) set(i uint32, rank uint8) {
	r[i] = uint32(rank)
}

func (r standardRegisters) size() uint32 {
	return uint32(len(r))
}

func (r standardRegisters) bytes() int {
	return len(r) * 4
}

func (r standardRegisters) clear() {
	for i := range r {
		r[i] = 0
	}
}

const (
	// packedFieldBits is the width of one packed register
	packedFieldBits = 5
	// packedMaxRank is the largest rank a packed register can hold
	packedMaxRank = 1<<packedFieldBits - 1
)

// packedRegisters stores ranks in tightly packed 5-bit fields. A field may
// span two adjacent bytes; the low-order part lives in the first byte.
type packedRegisters struct {
	bits []byte
	m    uint32
}

func newPackedRegisters(m uint32) *packedRegisters {
	numBits := uint64(m) * packedFieldBits
	numBytes := (numBits + 7) / 8
	return &packedRegisters{
		bits: make([]byte, numBytes),
		m:    m,
	}
}

func (r *packedRegisters) get(i uint32) uint8 {
	bitIdx := uint(i) * packedFieldBits
	byteIdx := bitIdx / 8
	startBit := bitIdx % 8

	v := uint16(r.bits[byteIdx]) >> startBit
	if startBit+packedFieldBits > 8 {
		v |= uint16(r.bits[byteIdx+1]) << (8 - startBit)
	}
	return uint8(v & packedMaxRank)
}

// set writes rank into the 5-bit field for register i. Values wider than
// the field saturate at packedMaxRank.
func (r *packedRegisters) set(i uint32, rank uint8) {
	if rank > packedMaxRank {
		rank = packedMaxRank
	}

	bitIdx := uint(i) * packedFieldBits
	byteIdx := bitIdx / 8
	startBit := bitIdx % 8

	mask := uint16(packedMaxRank) << startBit
	field := uint16(rank) << startBit

	r.bits[byteIdx] = r.bits[byteIdx]&^uint8(mask) | uint8(field)
	if startBit+packedFieldBits > 8 {
		r.bits[byteIdx+1] = r.bits[byteIdx+1]&^uint8(mask>>8) | uint8(field>>8)
	}
}

func (r *packedRegisters) size() uint32 {
	return r.m
}

// bytes reports floor(m*5/8). The backing slice rounds the allocation up
// to a whole byte, but the reported figure truncates.
func (r *packedRegisters) bytes() int {
	return int(r.m) * packedFieldBits / 8
}

func (r *packedRegisters) clear() {
	for i := range r.bits {
		r.bits[i] = 0
	}
}
