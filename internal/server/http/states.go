package http

type state uint8

const (
	awaitingRequest state = iota + 1
	dispatching
	writeResponse
	streamed
	closed
)
