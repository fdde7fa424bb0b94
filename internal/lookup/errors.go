package lookup

import "errors"

// ErrSuperseded reports that a newer search was started while this one was
// still waiting its delay, so its result was discarded
var ErrSuperseded = errors.New("lookup superseded by a newer search")
