package errors

import "errors"

var ErrUnauthorized = errors.New("user is not authorized")
var ErrForbidden = errors.New("operation is forbidden for user")

// Booking domain errors. Handlers surface these messages verbatim,
// so they are written the way the client shows them.
var ErrPastDate = errors.New("Cannot book for past dates")
var ErrPastTimeSlot = errors.New("Cannot book past time slots. Please select a future time slot.")
var ErrTurfNotFound = errors.New("Turf not found")
var ErrSlotTaken = errors.New("slot no longer available")
var ErrBookingNotFound = errors.New("booking not found")
var ErrCancelledBooking = errors.New("Cannot change status of a cancelled booking.")
var ErrNegativeAmount = errors.New("received amount cannot be negative")
var ErrAmountExceedsTotal = errors.New("received amount cannot exceed total amount")
