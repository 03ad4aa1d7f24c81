package device

import "github.com/google/uuid"

// Kind identifies a device variant.
type Kind string

// Device variants held by the registry.
const (
	KindWearable Kind = "wearable"
	KindComputer Kind = "computer"
	KindEmbedded Kind = "embedded_network_device"
)

// Device is the capability set shared by every inventory variant.
//
// Activate powers the device on after its variant-specific
// precondition holds; on failure the device state is unchanged.
// Describe renders the device as a single line for inventory output.
type Device interface {
	ID() string
	Name() string
	PoweredOn() bool
	Kind() Kind
	Activate() error
	Describe() string
}

// PowerNotifier is implemented by devices that report low power.
// Notifications are emitted as a side effect of state changes and
// never fail the change that triggered them.
type PowerNotifier interface {
	NotifyLowPower(level int)
}

// Logger is the minimal logging interface used by this package.
// Implemented by the infrastructure logging package.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing. Used as the default until
// a real logger is injected via SetLogger.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// GenerateID returns a new unique device id. Used for devices created
// programmatically rather than read from the inventory file.
func GenerateID() string {
	return uuid.New().String()
}
