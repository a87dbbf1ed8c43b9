package hll

import (
	"encoding/binary"
)

// cacheInvalidBit is the MSB of the little-endian 8-byte cache field; its
// presence means the stored cache value is stale and must be recomputed
// before being trusted.
const cacheInvalidBit = uint64(1) << 63

// HLL is a HyperLogLog cardinality estimator, wire-compatible with the
// reference implementation's dense and sparse encodings. The zero value is
// not usable; construct one with New, FromElements, or FromBytes.
//
// Like the teacher's Hll, this is a value-ish type with interior mutation
// through a pointer receiver: all exported methods take *HLL so Add/Merge
// visibly mutate the receiver.
type HLL struct {
	store      registerStore
	sparseMax  int
	cache      uint64
	cacheValid bool

	// err holds a construction error deferred from FromBytes. It is checked
	// and returned by every other exported method instead of at
	// construction time.
	err error
}

// New creates an empty HLL: sparse, with a single run covering every
// register, cache 0 and valid.
func New(opts ...Option) *HLL {
	h := &HLL{sparseMax: defaultSparseMax}
	for _, opt := range opts {
		opt(h)
	}
	h.store = newSparseStore(h.sparseMax)
	h.cacheValid = true
	return h
}

// FromElements creates an HLL and adds each element to it.
func FromElements(elements ...string) *HLL {
	h := New()
	_ = h.Add(elements...) // a freshly constructed HLL cannot error on Add
	return h
}

// FromBytes parses a serialized HLL. It never returns a non-nil error
// itself; a malformed signature or truncated payload is recorded and
// surfaces the first time Add, Merge, Count, ToBytes, or Equal is called.
func FromBytes(data []byte) *HLL {
	h := &HLL{sparseMax: defaultSparseMax}

	if len(data) < 16 {
		h.err = errInsufficientBytes
		return h
	}
	if string(data[0:4]) != hllMagic {
		h.err = errBadMagic
		return h
	}

	encoding := data[4]
	cacheRaw := binary.LittleEndian.Uint64(data[8:16])

	payload := data[16:]

	var store registerStore
	var err error
	switch encoding {
	case encodingDense:
		store, err = denseFromBytes(payload)
	case encodingSparse:
		store, err = sparseFromBytes(payload, h.sparseMax)
	default:
		err = errBadEncoding
	}
	if err != nil {
		h.err = err
		return h
	}

	h.store = store
	h.cacheValid = cacheRaw&cacheInvalidBit == 0
	h.cache = cacheRaw &^ cacheInvalidBit
	return h
}

// Add hashes each element and folds it into the register set, invalidating
// the cache for any register that changed.
func (h *HLL) Add(elements ...string) error {
	if h.err != nil {
		return h.err
	}
	if h.store == nil {
		h.store = newSparseStore(h.sparseMax)
	}

	for _, e := range elements {
		index, value := hashElement(e)
		h.updateRegister(index, value)
	}
	return nil
}

// Merge folds other's registers into h, taking the max of each pair.
// other is read, never retained or mutated.
func (h *HLL) Merge(other *HLL) error {
	if h.err != nil {
		return h.err
	}
	if other.err != nil {
		return other.err
	}
	if h.store == nil {
		h.store = newSparseStore(h.sparseMax)
	}
	if other.store == nil {
		return nil
	}

	other.store.forEach(func(i int, v byte) {
		h.updateRegister(i, v)
	})
	return nil
}

// updateRegister applies one (index, value) update to the store, promoting
// sparse to dense when the update demands it and invalidating the cache
// whenever a register actually changes.
func (h *HLL) updateRegister(index int, value byte) {
	sp, isSparse := h.store.(*sparseStore)

	outcome := h.store.setIfGreater(index, value)

	if outcome.mustPromote && isSparse {
		dense := promoteToDense(sp)
		h.store = dense
		if !outcome.applied {
			dense.setIfGreater(index, value)
		}
	}

	if outcome.changed {
		h.cacheValid = false
	}
}

// Count returns the estimated cardinality, recomputing it from the register
// set only if the cache is invalid.
func (h *HLL) Count() (uint64, error) {
	if h.err != nil {
		return 0, h.err
	}
	if h.cacheValid {
		return h.cache, nil
	}
	if h.store == nil {
		h.cache, h.cacheValid = 0, true
		return 0, nil
	}

	sum, zeros := h.store.indicator()
	h.cache = estimate(sum, zeros)
	h.cacheValid = true
	return h.cache, nil
}

// ToBytes serializes the HLL: a 16-byte header (signature, encoding byte,
// reserved bytes, cache with its validity bit) followed by the current
// representation's payload. The cache is written as-is, valid or not;
// callers who want a fresh cache should call Count first.
func (h *HLL) ToBytes() ([]byte, error) {
	if h.err != nil {
		return nil, h.err
	}

	store := h.store
	if store == nil {
		store = newSparseStore(h.sparseMax)
	}

	out := make([]byte, 16+store.sizeInBytes())
	copy(out[0:4], hllMagic)
	out[4] = store.encoding()

	cacheField := h.cache
	if !h.cacheValid {
		cacheField |= cacheInvalidBit
	}
	binary.LittleEndian.PutUint64(out[8:16], cacheField)

	store.writeBytes(out[16:])
	return out, nil
}

// Equal reports whether h and other hold identical register values. It
// compares the full register set, not the cached estimates, so it is exact
// regardless of either side's cache state.
func (h *HLL) Equal(other *HLL) (bool, error) {
	if h.err != nil {
		return false, h.err
	}
	if other.err != nil {
		return false, other.err
	}

	for i := 0; i < numRegisters; i++ {
		if h.registerAt(i) != other.registerAt(i) {
			return false, nil
		}
	}
	return true, nil
}

func (h *HLL) registerAt(i int) byte {
	if h.store == nil {
		return 0
	}
	return h.store.get(i)
}

// MarshalJSON refuses generic JSON serialization. The only sanctioned
// serialization is ToBytes/FromBytes; without this, encoding/json would
// silently marshal *HLL's unexported fields as `{}`, discarding the
// register state without any indication anything went wrong.
func (h *HLL) MarshalJSON() ([]byte, error) {
	return nil, errNotJSONSerializable
}

// GobEncode refuses generic gob encoding, for the same reason MarshalJSON
// does.
func (h *HLL) GobEncode() ([]byte, error) {
	return nil, errNotGobEncodable
}
