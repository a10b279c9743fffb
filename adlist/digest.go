package adlist

import (
	"encoding/binary"

	"github.com/dchest/siphash"
	"github.com/pengdafu/adlist-golang/util"
)

var digestSeedKey = util.GetRandomBytes(16)

// SetDigestSeed sets the SipHash key used by Digest. Only the first 16
// bytes are used; shorter seeds are zero padded.
func SetDigestSeed(seed []byte) {
	digestSeedKey = make([]byte, 16)
	copy(digestSeedKey, seed)
}

// Digest hashes the encoded values from head to tail. Lists holding equal
// encodings in the same order have the same digest.
func (l *List[T]) Digest(encode func(T) []byte) uint64 {
	h := siphash.New(digestSeedKey)
	var lenBuf [binary.MaxVarintLen64]byte
	for node := l.head; node != nil; node = node.next {
		b := encode(node.value)
		n := binary.PutUvarint(lenBuf[:], uint64(len(b)))
		h.Write(lenBuf[:n])
		h.Write(b)
	}
	return h.Sum64()
}
