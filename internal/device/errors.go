package device

import "errors"

// Domain errors for the device package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, device.ErrBatteryRange) {
//	    // handle out-of-range assignment
//	}
var (
	// ErrBatteryRange is returned when a battery level assignment is
	// outside the [0,100] range. The prior value is left unchanged.
	ErrBatteryRange = errors.New("device: battery level out of range")

	// ErrBatteryEmpty is returned when a wearable is activated with
	// too little charge to complete the power-on sequence.
	ErrBatteryEmpty = errors.New("device: battery empty")

	// ErrNoOperatingSystem is returned when a computer is activated
	// without an installed operating system.
	ErrNoOperatingSystem = errors.New("device: no operating system installed")

	// ErrInvalidIPAddress is returned when an IP address assignment
	// does not match the dotted-quad pattern.
	ErrInvalidIPAddress = errors.New("device: invalid ip address")

	// ErrNetworkRejected is returned when an embedded device connects
	// to a network outside the corporate domain.
	ErrNetworkRejected = errors.New("device: network connection rejected")

	// ErrCapacityExceeded is returned when adding to a full registry.
	ErrCapacityExceeded = errors.New("device: registry capacity exceeded")
)
