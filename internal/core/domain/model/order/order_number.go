package order

import (
	"encoding/hex"
	"strings"

	"orders/internal/core/domain/model/kernel"
)

// orderNumberPrefix is the display prefix carried by every order number.
const orderNumberPrefix = "OD-"

// FormatOrderNumber derives the human-readable order number from an order
// identifier. The mapping is pure, total, and injective: the same identifier
// always yields the same number, distinct identifiers never collide, and no
// mutable counter is involved, so derivation is race-free under concurrent
// order creation.
//
// The number is the "OD-" prefix followed by the uppercase hex encoding of
// the identifier bytes, e.g. "OD-550E8400E29B41D4A716446655440000".
func FormatOrderNumber(id kernel.UUID) string {
	raw := id.Bytes()
	return orderNumberPrefix + strings.ToUpper(hex.EncodeToString(raw[:]))
}
