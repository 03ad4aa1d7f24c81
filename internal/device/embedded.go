package device

import (
	"fmt"
	"regexp"
	"strings"
)

// RequiredNetwork is the corporate-network marker an embedded device's
// network name must contain before a connection is accepted. The match
// is an exact, case-sensitive substring check.
const RequiredNetwork = "MD Ltd."

// ipPattern accepts four dot-separated groups of 1-3 digits. It is a
// syntactic check only; octet values are not range-checked, so
// "999.999.999.999" is accepted.
var ipPattern = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)

// EmbeddedDevice is a network appliance on the corporate network.
// Its IP address is validated on every assignment; activation requires
// a successful connection to the corporate network.
type EmbeddedDevice struct {
	id          string
	name        string
	poweredOn   bool
	ipAddress   string
	networkName string
}

// NewEmbeddedDevice creates an embedded network device. The IP address
// is validated the same way as a direct assignment. An empty id is
// replaced with a generated one.
func NewEmbeddedDevice(id, name, ipAddress, networkName string) (*EmbeddedDevice, error) {
	if id == "" {
		id = GenerateID()
	}
	d := &EmbeddedDevice{
		id:          id,
		name:        name,
		networkName: networkName,
	}
	if err := d.SetIPAddress(ipAddress); err != nil {
		return nil, err
	}
	return d, nil
}

// ID implements Device.
func (d *EmbeddedDevice) ID() string { return d.id }

// Name implements Device.
func (d *EmbeddedDevice) Name() string { return d.name }

// PoweredOn implements Device.
func (d *EmbeddedDevice) PoweredOn() bool { return d.poweredOn }

// Kind implements Device.
func (d *EmbeddedDevice) Kind() Kind { return KindEmbedded }

// IPAddress returns the device's IP address.
func (d *EmbeddedDevice) IPAddress() string { return d.ipAddress }

// NetworkName returns the network the device connects to.
func (d *EmbeddedDevice) NetworkName() string { return d.networkName }

// SetIPAddress assigns a new IP address. Values that do not match the
// dotted-quad pattern are rejected immediately with ErrInvalidIPAddress
// and the prior address is kept.
func (d *EmbeddedDevice) SetIPAddress(ip string) error {
	if !ipPattern.MatchString(ip) {
		return fmt.Errorf("%w: %q", ErrInvalidIPAddress, ip)
	}
	d.ipAddress = ip
	return nil
}

// Connect verifies the device's network against the corporate-network
// marker. It fails with ErrNetworkRejected for any other network.
func (d *EmbeddedDevice) Connect() error {
	if !strings.Contains(d.networkName, RequiredNetwork) {
		return fmt.Errorf("%w: %q", ErrNetworkRejected, d.networkName)
	}
	return nil
}

// Activate implements Device. It connects to the corporate network,
// propagating any connection failure, then powers the device on.
func (d *EmbeddedDevice) Activate() error {
	if err := d.Connect(); err != nil {
		return err
	}
	d.poweredOn = true
	return nil
}

// Describe implements Device.
func (d *EmbeddedDevice) Describe() string {
	return fmt.Sprintf("Embedded Device [ID: %s, Name: %s, Turned On: %t, IP: %s, Network: %s]",
		d.id, d.name, d.poweredOn, d.ipAddress, d.networkName)
}
