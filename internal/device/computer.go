package device

import "fmt"

// noOSLabel renders a computer without an installed operating system.
const noOSLabel = "Not Installed"

// Computer is a personal computer. The operating system is optional;
// activation requires one to be installed.
type Computer struct {
	id              string
	name            string
	poweredOn       bool
	operatingSystem string
}

// NewComputer creates a computer. The operating system may be empty,
// in which case the machine cannot be activated until one is
// installed. An empty id is replaced with a generated one.
func NewComputer(id, name string, poweredOn bool, operatingSystem string) *Computer {
	if id == "" {
		id = GenerateID()
	}
	return &Computer{
		id:              id,
		name:            name,
		poweredOn:       poweredOn,
		operatingSystem: operatingSystem,
	}
}

// ID implements Device.
func (c *Computer) ID() string { return c.id }

// Name implements Device.
func (c *Computer) Name() string { return c.name }

// PoweredOn implements Device.
func (c *Computer) PoweredOn() bool { return c.poweredOn }

// Kind implements Device.
func (c *Computer) Kind() Kind { return KindComputer }

// OperatingSystem returns the installed operating system, or the empty
// string if none is installed.
func (c *Computer) OperatingSystem() string { return c.operatingSystem }

// InstallOS installs (or replaces) the operating system.
func (c *Computer) InstallOS(name string) {
	c.operatingSystem = name
}

// Activate implements Device. It fails with ErrNoOperatingSystem when
// no operating system is installed.
func (c *Computer) Activate() error {
	if c.operatingSystem == "" {
		return fmt.Errorf("%w: %s", ErrNoOperatingSystem, c.id)
	}
	c.poweredOn = true
	return nil
}

// Describe implements Device.
func (c *Computer) Describe() string {
	os := c.operatingSystem
	if os == "" {
		os = noOSLabel
	}
	return fmt.Sprintf("Personal Computer [ID: %s, Name: %s, Turned On: %t, OS: %s]",
		c.id, c.name, c.poweredOn, os)
}
