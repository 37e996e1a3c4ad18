package models

import "errors"

// ErrJobCancelled is the distinguished cancellation error. It propagates
// from any cooperative checkpoint up through the executor and orchestrator
// without retry and produces the cancelled terminal event.
var ErrJobCancelled = errors.New("job cancelled")
