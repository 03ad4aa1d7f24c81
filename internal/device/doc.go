// Package device provides the device model and registry for the
// MD Ltd. inventory.
//
// # Key Types
//
//   - Device: the capability set shared by every variant (id, name,
//     powered-on state, activation, rendering)
//   - Wearable: battery-powered smartwatch with range-checked battery
//     assignments and a low-power notification capability
//   - Computer: personal computer whose activation requires an
//     installed operating system
//   - EmbeddedDevice: network appliance whose IP address is validated
//     on assignment and whose activation requires the corporate network
//   - Registry: ordered, capacity-bounded collection with add, remove,
//     edit and describe operations
//
// # Usage
//
//	registry := device.NewRegistry(device.DefaultCapacity)
//	registry.SetLogger(log)
//
//	watch, err := device.NewWearable("SW-042", "Field Watch", false, 85, log)
//	if err != nil {
//	    return err
//	}
//	if err := registry.Add(watch); err != nil {
//	    return err
//	}
//
//	registry.Edit("SW-042", func(d device.Device) error {
//	    return d.(*device.Wearable).SetBatteryLevel(40)
//	})
//
//	for _, line := range registry.Describe() {
//	    fmt.Println(line)
//	}
//
// # Validation
//
// Field-level validation is applied at write time: battery levels are
// rejected outside [0,100] and IP addresses are rejected unless they
// match the dotted-quad pattern. Failed assignments leave the prior
// value unchanged. Activation preconditions use sentinel errors
// (ErrBatteryEmpty, ErrNoOperatingSystem, ErrNetworkRejected) checked
// via errors.Is.
//
// # Thread Safety
//
// The Registry is safe for concurrent use. All operations are
// protected by a read-write mutex and enumeration snapshots the
// collection before iterating. Individual devices are not themselves
// synchronised; mutate them through Registry.Edit.
package device
