package race

import "errors"

// ErrNotFinished is returned when a result is requested mid-race
var ErrNotFinished = errors.New("race is not finished")
