package hll

// registerStore is the uniform logical view shared by the dense and sparse
// physical encodings: 16384 registers, indexed [0, numRegisters), each
// holding a value in [0, maxRegisterVal]. Generalized from the teacher's
// storage/registers interface pair, collapsed into one interface since this
// module's two encodings (unlike the teacher's explicit/sparse/dense trio)
// both carry register semantics directly.
type registerStore interface {
	// get returns the current value of register i.
	get(i int) byte

	// setIfGreater sets register i to value iff value is greater than the
	// current value, reporting what happened so the caller can decide
	// whether to promote.
	setIfGreater(i int, value byte) setOutcome

	// indicator computes the HyperLogLog indicator sum (Σ 2^-R[i]) and the
	// number of zero-valued registers, the two quantities the estimator
	// needs.
	indicator() (sum float64, zeros int)

	// forEach invokes fn once per non-zero register, in ascending index
	// order. Used by promotion and by Merge to avoid materializing a full
	// 16384-register array when the source is sparse.
	forEach(fn func(i int, value byte))

	// encoding is the wire encoding byte (0 = dense, 1 = sparse).
	encoding() byte

	// sizeInBytes is the length of the serialized payload.
	sizeInBytes() int

	// writeBytes serializes the payload into dst, which has exactly
	// sizeInBytes() bytes available.
	writeBytes(dst []byte)

	// clone returns a deep, independent copy.
	clone() registerStore
}

// setOutcome reports the result of a register update.
type setOutcome struct {
	// changed is true if the register's value increased.
	changed bool

	// mustPromote is true if the store must be promoted to dense before the
	// HLL can be considered consistent: either because the new value
	// exceeds what the sparse encoding can represent, or because the
	// opcode stream grew past the configured sparse-max.
	mustPromote bool

	// applied is true if the new value is already reflected in the store
	// (a size-triggered promotion); false means the value-exceeds-sparse
	// case fired and the caller must promote first, then apply the value
	// to the resulting dense store.
	applied bool
}
