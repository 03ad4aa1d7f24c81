package device

import "sync"

// DefaultCapacity is the registry size limit when none is configured.
const DefaultCapacity = 15

// Registry is an ordered, capacity-bounded collection of devices.
//
// Devices keep the order in which they were added. The registry owns
// its devices for the process lifetime; removal drops every device
// with a matching id.
//
// All public methods are thread-safe. Enumeration works on a snapshot
// taken under the read lock, so mutation during iteration is safe.
type Registry struct {
	mu       sync.RWMutex
	devices  []Device
	capacity int
	logger   Logger
}

// NewRegistry creates an empty registry bounded to the given capacity.
// A capacity of zero or less selects DefaultCapacity.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Registry{
		devices:  make([]Device, 0, capacity),
		capacity: capacity,
		logger:   noopLogger{},
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// Add appends a device to the registry.
// It fails with ErrCapacityExceeded when the registry is full; the
// collection is left unchanged in that case.
func (r *Registry) Add(d Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.devices) >= r.capacity {
		return ErrCapacityExceeded
	}
	r.devices = append(r.devices, d)

	r.logger.Info("device added", "id", d.ID(), "name", d.Name(), "kind", d.Kind())
	return nil
}

// Remove drops every device whose id matches. Removing an absent id is
// a no-op. It returns the number of devices removed.
func (r *Registry) Remove(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.devices[:0]
	for _, d := range r.devices {
		if d.ID() != id {
			kept = append(kept, d)
		}
	}
	removed := len(r.devices) - len(kept)
	// Clear the tail so removed devices are not retained.
	for i := len(kept); i < len(r.devices); i++ {
		r.devices[i] = nil
	}
	r.devices = kept

	if removed > 0 {
		r.logger.Info("devices removed", "id", id, "count", removed)
	}
	return removed
}

// Edit locates the first device with the given id and applies the
// mutation to it in place. Editing an absent id is a no-op returning
// nil. An error returned by the mutation propagates to the caller.
func (r *Registry) Edit(id string, mutate func(Device) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.devices {
		if d.ID() == id {
			if err := mutate(d); err != nil {
				return err
			}
			r.logger.Debug("device edited", "id", id)
			return nil
		}
	}
	return nil
}

// Get returns the first device with the given id.
func (r *Registry) Get(id string) (Device, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.devices {
		if d.ID() == id {
			return d, true
		}
	}
	return nil, false
}

// Devices returns a snapshot of the registry in insertion order.
// The returned slice is independent of the registry's internal state.
func (r *Registry) Devices() []Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]Device, len(r.devices))
	copy(snapshot, r.devices)
	return snapshot
}

// Describe renders every device in insertion order.
func (r *Registry) Describe() []string {
	devices := r.Devices()
	lines := make([]string, 0, len(devices))
	for _, d := range devices {
		lines = append(lines, d.Describe())
	}
	return lines
}

// Len returns the number of devices currently held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}

// Capacity returns the registry's size limit.
func (r *Registry) Capacity() int {
	return r.capacity
}

// Full reports whether the registry has reached its capacity.
func (r *Registry) Full() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices) >= r.capacity
}

// Stats returns registry statistics for reporting.
type Stats struct {
	TotalDevices int
	ByKind       map[Kind]int
	PoweredOn    int
}

// GetStats returns current registry statistics.
func (r *Registry) GetStats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := Stats{
		TotalDevices: len(r.devices),
		ByKind:       make(map[Kind]int),
	}
	for _, d := range r.devices {
		stats.ByKind[d.Kind()]++
		if d.PoweredOn() {
			stats.PoweredOn++
		}
	}
	return stats
}
