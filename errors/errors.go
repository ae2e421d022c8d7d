package errors

import "fmt"

var (
	ErrMalformedInteger = fmt.Errorf("malformed integer")
	ErrRuntimeInit      = fmt.Errorf("distributed runtime initialization failed")
	ErrRuntimeActive    = fmt.Errorf("distributed runtime already active")
	ErrRuntimeFinalized = fmt.Errorf("distributed runtime already finalized")
)
