package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG is a PRNG backed by crypto/rand. Its output is not
// reproducible; use [KeyedPRNG] when a deterministic stream is needed.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read reads random bytes into sum.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG is a structure storing the parameters used to deterministically
// generate a sequence of random bytes from a key, using the hash function
// blake2b. Two KeyedPRNG instantiated with the same key produce the same
// stream of bytes.
// WARNING: KeyedPRNG should NOT be called by multiple threads. If that occurs,
// the generated sequence will not be deterministic.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = key
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// NewSeededPRNG creates a KeyedPRNG whose key is derived from a numeric seed
// and a stream label by hashing with blake3. Distinct labels under the same
// seed give independent deterministic streams.
func NewSeededPRNG(seed uint64, label string) (*KeyedPRNG, error) {
	hasher := blake3.New()

	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, seed)
	hasher.Write(buf)
	hasher.Write([]byte(label))

	key := hasher.Sum(nil)

	return NewKeyedPRNG(key[:32])
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used with [NewKeyedPRNG] to instantiate
// a new PRNG that will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
// WARNING: Read() should NOT be called concurrently by multiple threads. If that occurs, the generated sequence will not be deterministic.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}
