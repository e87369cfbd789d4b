package pbx

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewReference returns a fresh 24-character hex reference in the style of
// Xcode's own object identifiers. The value is random (96 bits of a v4
// UUID), so collisions within a document are vanishingly unlikely; use
// [Document.NewReference] when a uniqueness guarantee is needed.
func NewReference() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:12]))
}
