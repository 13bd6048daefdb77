package rangemap

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidRule      = errors.New("invalid rule")
	ErrOverlappingRules = errors.New("overlapping rules")
	ErrNoSeeds          = errors.New("no seeds")
	ErrEmptySeed        = errors.New("empty seed interval")
	ErrOddSeedPairs     = errors.New("odd number of seed values")
)

func errorf(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func i64toa(i int64) string {
	return strconv.FormatInt(i, 10)
}
