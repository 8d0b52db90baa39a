package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string. Auction and bid
// records use these as primary keys; uniqueness does not imply ordering.
func GenerateID() string {
	return uuid.NewString()
}
