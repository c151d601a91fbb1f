package service

import (
	"crypto/rand"
	"fmt"
)

// NewBookingReference returns a short shareable token: a fixed prefix plus
// 32 bits of entropy as upper-case hex. Collisions are caught by the unique
// index on the ledger, not here.
func NewBookingReference() string {
	var buf [4]byte
	_, _ = rand.Read(buf[:])
	return fmt.Sprintf("BR-%X", buf[:])
}
