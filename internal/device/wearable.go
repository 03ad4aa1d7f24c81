package device

import "fmt"

// Battery thresholds for wearables.
const (
	// BatteryMin and BatteryMax bound every battery level assignment.
	BatteryMin = 0
	BatteryMax = 100

	// lowBatteryThreshold triggers a low-power notification on
	// assignment below this level.
	lowBatteryThreshold = 20

	// activateMinBattery is the minimum charge required to activate.
	// Activation at exactly 10 is rejected; 11 succeeds and drains to 1.
	activateMinBattery = 11

	// activateDrain is the charge consumed by a successful activation.
	activateDrain = 10
)

// Wearable is a battery-powered smartwatch.
//
// The battery level is validated on every assignment and stays within
// [BatteryMin, BatteryMax]. Assignments below the low-battery threshold
// emit a notification through the PowerNotifier capability.
type Wearable struct {
	id           string
	name         string
	poweredOn    bool
	batteryLevel int
	logger       Logger
}

// NewWearable creates a wearable with the given battery level.
// An empty id is replaced with a generated one. The battery level is
// validated the same way as a direct assignment, so a level below the
// low-battery threshold notifies through the given logger already at
// construction. A nil logger suppresses notifications until SetLogger.
func NewWearable(id, name string, poweredOn bool, batteryLevel int, logger Logger) (*Wearable, error) {
	if id == "" {
		id = GenerateID()
	}
	if logger == nil {
		logger = noopLogger{}
	}
	w := &Wearable{
		id:        id,
		name:      name,
		poweredOn: poweredOn,
		logger:    logger,
	}
	if err := w.SetBatteryLevel(batteryLevel); err != nil {
		return nil, err
	}
	return w, nil
}

// SetLogger sets the logger used for low-battery notifications.
func (w *Wearable) SetLogger(logger Logger) {
	w.logger = logger
}

// ID implements Device.
func (w *Wearable) ID() string { return w.id }

// Name implements Device.
func (w *Wearable) Name() string { return w.name }

// PoweredOn implements Device.
func (w *Wearable) PoweredOn() bool { return w.poweredOn }

// Kind implements Device.
func (w *Wearable) Kind() Kind { return KindWearable }

// BatteryLevel returns the current battery level in percent.
func (w *Wearable) BatteryLevel() int { return w.batteryLevel }

// SetBatteryLevel assigns a new battery level.
//
// Values outside [0,100] are rejected with ErrBatteryRange and the
// prior level is kept. A successful assignment below 20 emits exactly
// one low-power notification.
func (w *Wearable) SetBatteryLevel(level int) error {
	if level < BatteryMin || level > BatteryMax {
		return fmt.Errorf("%w: %d", ErrBatteryRange, level)
	}
	w.batteryLevel = level
	if level < lowBatteryThreshold {
		w.NotifyLowPower(level)
	}
	return nil
}

// NotifyLowPower implements PowerNotifier. The notification is emitted
// as a structured warning; it carries no return value and never fails
// the assignment that triggered it.
func (w *Wearable) NotifyLowPower(level int) {
	w.logger.Warn("low battery", "id", w.id, "name", w.name, "level", level)
}

// Activate implements Device. It fails with ErrBatteryEmpty below 11%
// charge; otherwise it drains 10% and powers the wearable on.
func (w *Wearable) Activate() error {
	if w.batteryLevel < activateMinBattery {
		return fmt.Errorf("%w: %d%%", ErrBatteryEmpty, w.batteryLevel)
	}
	if err := w.SetBatteryLevel(w.batteryLevel - activateDrain); err != nil {
		return err
	}
	w.poweredOn = true
	return nil
}

// Describe implements Device.
func (w *Wearable) Describe() string {
	return fmt.Sprintf("Smartwatch [ID: %s, Name: %s, Turned On: %t, Battery: %d%%]",
		w.id, w.name, w.poweredOn, w.batteryLevel)
}
