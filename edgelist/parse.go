// SPDX-License-Identifier: MIT

package edgelist

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/katalvlaran/csrpath/core"
)

// Sentinel errors.
var (
	ErrMalformedRecord = errors.New("edgelist: malformed record")
	ErrBadIdentifier   = errors.New("edgelist: bad identifier")
	ErrBadWeight       = errors.New("edgelist: bad weight")
	ErrOptionViolation = errors.New("edgelist: invalid option supplied")
)

// IDParser converts one identifier field.
type IDParser func(field string) (core.Identifier, error)

// ParseInteger accepts unsigned decimal, 0x hex, 0o octal or 0b binary
// integers up to 64 bits.
func ParseInteger(field string) (core.Identifier, error) {
	u, err := strconv.ParseUint(field, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrBadIdentifier, field)
	}

	return core.Identifier(u), nil
}

// ParseIPv4 encodes a dotted-quad address as its big-endian 32-bit value,
// so "10.0.0.1" becomes 0x0A000001. IPv4-mapped IPv6 forms are unmapped first.
func ParseIPv4(field string) (core.Identifier, error) {
	addr, err := netip.ParseAddr(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadIdentifier, field, err)
	}
	addr = addr.Unmap()
	if !addr.Is4() {
		return 0, fmt.Errorf("%w: %q is not an IPv4 address", ErrBadIdentifier, field)
	}
	b := addr.As4()

	return core.Identifier(binary.BigEndian.Uint32(b[:])), nil
}

// ParseAuto uses ParseIPv4 for fields containing a dot and ParseInteger
// otherwise.
func ParseAuto(field string) (core.Identifier, error) {
	if strings.Contains(field, ".") {
		return ParseIPv4(field)
	}

	return ParseInteger(field)
}

// FormatIPv4 is the inverse of ParseIPv4 for identifiers below 2^32.
func FormatIPv4(id core.Identifier) (string, error) {
	if id > 0xFFFFFFFF {
		return "", fmt.Errorf("%w: %d exceeds 32 bits", ErrBadIdentifier, uint64(id))
	}
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(id))

	return netip.AddrFrom4(b).String(), nil
}
