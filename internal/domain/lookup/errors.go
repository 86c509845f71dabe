package lookup

import "errors"

// Sentinel kinds for lookup table errors.
var (
	ErrLoadTable = errors.New("lookup table load failed")
)
