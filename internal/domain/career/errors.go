package career

import "errors"

var (
	ErrInvalidTimeline  = errors.New("timeline must be at least 1")
	ErrInvalidFocusArea = errors.New("unknown focus area")
)
