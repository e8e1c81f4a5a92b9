package order

import (
	"strconv"
	"strings"
)

// IDPrefix prefixes the external order id.
const IDPrefix = "ORD-"

// ExternalID renders the client facing id of order id.
func ExternalID(id int64) string {
	return IDPrefix + strconv.FormatInt(id, 10)
}

// ParseExternalID accepts "ORD-<n>" (case-insensitive prefix) or a bare
// number and returns the numeric id.
func ParseExternalID(raw string) (int64, bool) {
	value := strings.TrimSpace(raw)
	if len(value) >= len(IDPrefix) && strings.EqualFold(value[:len(IDPrefix)], IDPrefix) {
		value = value[len(IDPrefix):]
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
