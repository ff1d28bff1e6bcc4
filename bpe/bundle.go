package bpe

import (
	"errors"

	"github.com/golang/snappy"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	bundleNoCompression     = 0
	bundleSnappyCompression = 1
)

var (
	// ErrBadBundle is returned when a binary payload is too short to
	// be a bundle.
	ErrBadBundle = errors.New("bpe: bad bundle payload")

	// ErrBadCompression is returned on an unknown compression tag.
	ErrBadCompression = errors.New("bpe: bad compression codec")
)

// Bundle is the codec's only wire form: the space-joined symbol
// string plus the ordered merge history needed to invert it. The
// field tags match the textual object form the codec has always
// produced.
type Bundle struct {
	Compressed string   `json:"compressed" msgpack:"compressed"`
	Merges     []string `json:"merges_map" msgpack:"merges_map"`
}

// Decompress reconstructs the original text from the bundle.
func (b *Bundle) Decompress() string {
	return Decompress(b.Compressed, b.Merges)
}

// bundleAlias strips the Binary(Un)Marshaler methods so the msgpack
// codec encodes the struct fields instead of recursing back into
// MarshalBinary/UnmarshalBinary.
type bundleAlias Bundle

// MarshalBinary encodes the bundle as a msgpack body followed by a
// single compression tag byte. The body is snappy-compressed when
// that actually saves space.
func (b *Bundle) MarshalBinary() ([]byte, error) {
	body, err := msgpack.Marshal((*bundleAlias)(b))
	if err != nil {
		return nil, err
	}

	if snp := snappy.Encode(nil, body); len(snp) < len(body)-len(body)/4 {
		return append(snp, bundleSnappyCompression), nil
	}
	return append(body, bundleNoCompression), nil
}

// UnmarshalBinary decodes a payload produced by MarshalBinary.
func (b *Bundle) UnmarshalBinary(p []byte) error {
	if len(p) < 1 {
		return ErrBadBundle
	}

	body := p[:len(p)-1]
	switch p[len(p)-1] {
	case bundleNoCompression:
	case bundleSnappyCompression:
		plain, err := snappy.Decode(nil, body)
		if err != nil {
			return err
		}
		body = plain
	default:
		return ErrBadCompression
	}
	return msgpack.Unmarshal(body, (*bundleAlias)(b))
}
