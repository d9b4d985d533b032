package emplace

import (
	"fmt"
	"sync/atomic"
)

// Brand is the per-call identity binding an Uninit to the Init derived
// from it. Every driver entry point mints exactly one fresh brand;
// brands from distinct calls never match. The zero Brand is invalid and
// matches nothing, including itself.
//
// Brand values are freely copyable tokens. Unforgeability means a
// caller can never construct a brand that matches one minted by a
// driver call it did not participate in.
type Brand struct {
	id uint64
}

// brandSeq is the only shared state between concurrent driver calls.
var brandSeq atomic.Uint64

func mintBrand() Brand {
	return Brand{id: brandSeq.Add(1)}
}

// Valid reports whether b was minted by a driver call.
func (b Brand) Valid() bool {
	return b.id != 0
}

// Matches reports whether b and other are the same minted brand.
// The zero brand never matches.
func (b Brand) Matches(other Brand) bool {
	return b.id != 0 && b.id == other.id
}

func (b Brand) String() string {
	if b.id == 0 {
		return "brand#invalid"
	}
	return fmt.Sprintf("brand#%d", b.id)
}
