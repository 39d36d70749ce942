package errors

import "fmt"

var (
	ErrNotPaired          = fmt.Errorf("you are not paired")
	ErrInvalidLogin       = fmt.Errorf("invalid login request")
	ErrInvalidCredentials = fmt.Errorf("invalid username or password")
	ErrWorkerPanic        = fmt.Errorf("worker panic")
)
