// Package digest provides the streaming hash pipeline that turns the
// canonical byte grammar into a stable name.
//
// A Pipeline consumes the canonical byte stream incrementally through its
// io.Writer side, finalizes a selected SHA-2 variant, truncates the digest
// to a configured length, and hex-encodes the result. Configuration problems
// are detected when the pipeline is created, never mid-stream.
//
// The pipeline is a strictly sequential fold: the hash state is an ordered
// accumulator, and feeding it bytes out of canonical order silently produces
// a wrong name with no detectable error. Never parallelize the writes.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"
)

// Variant selects a member of the SHA-2 family.
type Variant string

// Supported hash variants.
const (
	SHA224     Variant = "sha224"
	SHA256     Variant = "sha256"
	SHA384     Variant = "sha384"
	SHA512     Variant = "sha512"
	SHA512_224 Variant = "sha512/224"
	SHA512_256 Variant = "sha512/256"
)

// Sentinel errors returned by the digest pipeline.
var (
	// ErrInvalidConfiguration indicates an unrecognized hash variant or a
	// truncation length exceeding the variant's natural digest length.
	ErrInvalidConfiguration = errors.New("invalid digest configuration")

	// ErrFinalized indicates a write to a pipeline whose digest has already
	// been finalized. A fresh computation requires a new pipeline.
	ErrFinalized = errors.New("digest already finalized")
)

// Variants returns all supported variants in a fixed order.
func Variants() []Variant {
	return []Variant{SHA224, SHA256, SHA384, SHA512, SHA512_224, SHA512_256}
}

// ParseVariant parses a variant name. Matching is case-insensitive and
// accepts "-" or "_" in place of "/" in the truncated SHA-512 names
// (e.g. "SHA-512/256", "sha512_256").
func ParseVariant(s string) (Variant, error) {
	norm := strings.ToLower(s)
	norm = strings.ReplaceAll(norm, "-", "")
	norm = strings.ReplaceAll(norm, "_", "/")
	if strings.HasPrefix(norm, "sha512") && len(norm) > len("sha512") && norm[len("sha512")] != '/' {
		norm = "sha512/" + norm[len("sha512"):]
	}
	switch Variant(norm) {
	case SHA224, SHA256, SHA384, SHA512, SHA512_224, SHA512_256:
		return Variant(norm), nil
	default:
		return "", fmt.Errorf("%w: unknown hash variant %q", ErrInvalidConfiguration, s)
	}
}

// Size returns the variant's natural digest length in bytes, or 0 for an
// unrecognized variant.
func (v Variant) Size() int {
	switch v {
	case SHA224:
		return sha256.Size224
	case SHA256:
		return sha256.Size
	case SHA384:
		return sha512.Size384
	case SHA512:
		return sha512.Size
	case SHA512_224:
		return sha512.Size224
	case SHA512_256:
		return sha512.Size256
	default:
		return 0
	}
}

// String returns the variant name.
func (v Variant) String() string {
	return string(v)
}

// newHash returns a fresh hash state for the variant, or nil for an
// unrecognized one.
func (v Variant) newHash() hash.Hash {
	switch v {
	case SHA224:
		return sha256.New224()
	case SHA256:
		return sha256.New()
	case SHA384:
		return sha512.New384()
	case SHA512:
		return sha512.New()
	case SHA512_224:
		return sha512.New512_224()
	case SHA512_256:
		return sha512.New512_256()
	default:
		return nil
	}
}

// Pipeline is a single-use streaming digest.
//
// It moves through three states: idle (created, nothing written), streaming
// (receiving bytes), and finalized (digest computed, immutable). There is no
// transition back from finalized.
type Pipeline struct {
	variant   Variant
	length    int
	h         hash.Hash
	sum       []byte
	finalized bool
}

// NewPipeline creates a pipeline for the given variant and truncation
// length. A length of 0 selects the variant's natural digest length.
//
// Returns ErrInvalidConfiguration if the variant is unrecognized, the length
// is negative, or the length exceeds the variant's natural digest length.
func NewPipeline(variant Variant, length int) (*Pipeline, error) {
	h := variant.newHash()
	if h == nil {
		return nil, fmt.Errorf("%w: unknown hash variant %q", ErrInvalidConfiguration, string(variant))
	}
	natural := variant.Size()
	if length == 0 {
		length = natural
	}
	if length < 0 || length > natural {
		return nil, fmt.Errorf("%w: truncation length %d exceeds %s digest length %d",
			ErrInvalidConfiguration, length, variant, natural)
	}
	return &Pipeline{variant: variant, length: length, h: h}, nil
}

// Variant returns the configured hash variant.
func (p *Pipeline) Variant() Variant {
	return p.variant
}

// Length returns the truncated digest length in bytes.
func (p *Pipeline) Length() int {
	return p.length
}

// Write feeds canonical bytes into the running hash state.
// It fails with ErrFinalized once Sum or HexName has been called.
func (p *Pipeline) Write(b []byte) (int, error) {
	if p.finalized {
		return 0, ErrFinalized
	}
	return p.h.Write(b)
}

// Sum finalizes the digest on first call and returns its leading Length()
// bytes. Subsequent calls return the same bytes.
func (p *Pipeline) Sum() []byte {
	if !p.finalized {
		full := p.h.Sum(nil)
		p.sum = full[:p.length]
		p.finalized = true
	}
	return p.sum
}

// HexName finalizes the digest and returns the stable name: the truncated
// digest in lowercase hexadecimal, two characters per byte, no separators.
func (p *Pipeline) HexName() string {
	return hex.EncodeToString(p.Sum())
}
