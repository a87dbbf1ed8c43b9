package hll

// Precision is fixed at 14, matching the reference implementation's register
// index width. This is not configurable: the wire format, the bias tables,
// and the sparse opcode widths are all derived from it.
const (
	pBits        = 14
	qBits        = 64 - pBits
	numRegisters = 1 << pBits
	registerMask = numRegisters - 1

	// denseBytes is the packed size of the dense representation: 16384
	// registers at 6 bits each.
	denseBytes = numRegisters * 6 / 8

	// maxRegisterVal is the largest value a dense register may hold.
	maxRegisterVal = 50

	// maxSparseVal is the largest value a VAL opcode can represent. Setting a
	// register above this forces promotion to dense.
	maxSparseVal = 32

	// defaultSparseMax is the opcode-stream length, in bytes, above which a
	// sparse HLL is promoted to dense.
	defaultSparseMax = 3000

	// murmurSeed is the constant the reference implementation seeds
	// MurmurHash64A with when hashing elements.
	murmurSeed = 0xadc83b19

	// header encoding byte values, stored at byte offset 4 of the header.
	encodingDense  = 0
	encodingSparse = 1

	hllMagic = "HYLL"
)
