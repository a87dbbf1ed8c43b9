package hll

import "github.com/pkg/errors"

// errInsufficientBytes is returned when a byte slice handed to FromBytes (or
// one of the storage-level *FromBytes constructors) is too short for the
// header it claims to have, is truncated mid-opcode, or carries a dense
// payload that is not exactly denseBytes long.
var errInsufficientBytes = errors.New("hll: insufficient bytes to deserialize")

// errMalformedSparse is returned when a sparse opcode stream does not expand
// to exactly numRegisters registers.
var errMalformedSparse = errors.New("hll: malformed sparse opcode stream")

// errBadMagic is returned when a byte slice does not begin with the "HYLL"
// signature.
var errBadMagic = errors.New("hll: missing HYLL signature")

// errBadEncoding is returned when the header's encoding byte is neither
// encodingDense nor encodingSparse.
var errBadEncoding = errors.New("hll: unrecognized encoding byte")

// errNotJSONSerializable is returned by MarshalJSON. The only sanctioned
// serialization is ToBytes/FromBytes; generic marshaling is refused rather
// than silently producing a useless `{}`.
var errNotJSONSerializable = errors.New("hll: HLL is not JSON serializable, use ToBytes")

// errNotGobEncodable is returned by GobEncode, for the same reason.
var errNotGobEncodable = errors.New("hll: cannot pickle HLL, use ToBytes")
