package repositories

import (
	"errors"
	"math"
)

// ErrRecordNotFound is returned by Update and Delete when no row has the id.
var ErrRecordNotFound = errors.New("record not found")

// missingID never matches a row; identity columns start at 1.
const missingID int64 = -1

// idArg binds an id as a signed 64-bit value. Ids past math.MaxInt64 cannot
// be stored by either driver, so they bind as an id no row has.
func idArg(id uint) int64 {
	if uint64(id) > math.MaxInt64 {
		return missingID
	}
	return int64(id)
}
