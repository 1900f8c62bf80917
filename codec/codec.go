// Package codec provides pluggable value serialization for byte-oriented
// cache backends (store/bigcache, store/redis). A Codec must round-trip:
// Decode(Encode(v)) yields an equivalent v.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
