package repository

import "errors"

// Sentinel errors shared by every store. Implementations wrap them with %w.
var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("record already exists")
	ErrSlotTaken  = errors.New("slot already booked")
	ErrStaleState = errors.New("record changed since it was read")
)
