package move

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AccountAddress represents the 16 byte address of an on-chain account.
type AccountAddress [AddressLength]byte

// AddressLength is the size of an account address.
const AddressLength = 16

// ZeroAddress represents the "zero address" (account that no one owns).
var ZeroAddress = AccountAddress{}

// CoreCodeAddress is the address hosting the core framework modules (0x1).
var CoreCodeAddress = func() AccountAddress {
	var a AccountAddress
	a[AddressLength-1] = 1
	return a
}()

// HexToAddress converts a hex string to an AccountAddress. The string may
// carry a "0x" prefix and may be shorter than the full address width, in
// which case it is left-padded with zeroes.
func HexToAddress(h string) (AccountAddress, error) {
	h = strings.TrimPrefix(h, "0x")
	if len(h)%2 != 0 {
		h = "0" + h
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return ZeroAddress, fmt.Errorf("invalid address hex string (%s): %w", h, err)
	}
	if len(b) > AddressLength {
		return ZeroAddress, fmt.Errorf("address hex string too long: got %d bytes, expected at most %d", len(b), AddressLength)
	}
	return BytesToAddress(b), nil
}

// BytesToAddress returns an AccountAddress with value b.
//
// If b is larger than 16, b will be cropped from the left.
// If b is smaller than 16, b will be appended by zeroes at the front.
func BytesToAddress(b []byte) AccountAddress {
	var a AccountAddress
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

// Bytes returns the byte representation of the address.
func (a AccountAddress) Bytes() []byte { return a[:] }

// Hex returns the hex string representation of the address.
func (a AccountAddress) Hex() string {
	return hex.EncodeToString(a.Bytes())
}

// String returns the string representation of the address.
func (a AccountAddress) String() string {
	return a.Hex()
}

// Short returns the string representation of the address with leading zeros
// removed, the form used in canonical type renderings (0x1 instead of
// 0x00000000000000000000000000000001).
func (a AccountAddress) Short() string {
	trimmed := strings.TrimLeft(a.Hex(), "0")
	if trimmed == "" {
		trimmed = "0"
	}
	return trimmed
}

func (a AccountAddress) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", "0x"+a.Hex())), nil
}

func (a *AccountAddress) UnmarshalJSON(data []byte) error {
	addr, err := HexToAddress(strings.Trim(string(data), "\""))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
