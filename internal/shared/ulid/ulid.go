package ulid

import (
	"github.com/oklog/ulid/v2"
)

// New generates a new ULID string.
var New = func() string {
	return ulid.Make().String()
}
