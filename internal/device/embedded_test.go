package device

import (
	"errors"
	"testing"
)

func newTestEmbedded(t *testing.T, network string) *EmbeddedDevice {
	t.Helper()
	d, err := NewEmbeddedDevice("ED1", "Door Controller", "10.0.8.14", network)
	if err != nil {
		t.Fatalf("NewEmbeddedDevice() error = %v", err)
	}
	return d
}

func TestEmbeddedDevice_SetIPAddress(t *testing.T) {
	tests := []struct {
		name    string
		ip      string
		wantErr bool
	}{
		{name: "plain dotted quad", ip: "192.168.4.7", wantErr: false},
		{name: "single digit groups", ip: "1.2.3.4", wantErr: false},
		{name: "out-of-range octets still accepted", ip: "999.999.999.999", wantErr: false},
		{name: "three groups", ip: "1.2.3", wantErr: true},
		{name: "five groups", ip: "1.2.3.4.5", wantErr: true},
		{name: "four-digit group", ip: "1234.0.0.1", wantErr: true},
		{name: "letters", ip: "a.b.c.d", wantErr: true},
		{name: "empty", ip: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestEmbedded(t, "MD Ltd. HQ")
			err := d.SetIPAddress(tt.ip)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidIPAddress) {
					t.Errorf("SetIPAddress(%q) error = %v, want ErrInvalidIPAddress", tt.ip, err)
				}
				if d.IPAddress() != "10.0.8.14" {
					t.Errorf("IPAddress = %q after failed set, want %q", d.IPAddress(), "10.0.8.14")
				}
				return
			}
			if err != nil {
				t.Errorf("SetIPAddress(%q) error = %v", tt.ip, err)
			}
			if d.IPAddress() != tt.ip {
				t.Errorf("IPAddress = %q, want %q", d.IPAddress(), tt.ip)
			}
		})
	}
}

func TestNewEmbeddedDevice_InvalidIP(t *testing.T) {
	_, err := NewEmbeddedDevice("ED1", "Door Controller", "10.0.8", "MD Ltd. HQ")
	if !errors.Is(err, ErrInvalidIPAddress) {
		t.Errorf("NewEmbeddedDevice() error = %v, want ErrInvalidIPAddress", err)
	}
}

func TestEmbeddedDevice_Connect(t *testing.T) {
	tests := []struct {
		name    string
		network string
		wantErr bool
	}{
		{name: "marker with suffix", network: "MD Ltd. Corp", wantErr: false},
		{name: "marker with prefix", network: "HQ MD Ltd.", wantErr: false},
		{name: "marker alone", network: "MD Ltd.", wantErr: false},
		{name: "different network", network: "Other Corp", wantErr: true},
		{name: "case matters", network: "md ltd. corp", wantErr: true},
		{name: "missing trailing dot", network: "MD Ltd", wantErr: true},
		{name: "empty", network: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestEmbedded(t, tt.network)
			err := d.Connect()
			if tt.wantErr {
				if !errors.Is(err, ErrNetworkRejected) {
					t.Errorf("Connect() error = %v, want ErrNetworkRejected", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Connect() error = %v", err)
			}
		})
	}
}

func TestEmbeddedDevice_Activate(t *testing.T) {
	t.Run("powers on when connected to the corporate network", func(t *testing.T) {
		d := newTestEmbedded(t, "MD Ltd. HQ")
		if err := d.Activate(); err != nil {
			t.Fatalf("Activate() error = %v", err)
		}
		if !d.PoweredOn() {
			t.Error("PoweredOn() = false, want true")
		}
	})

	t.Run("propagates connection failure", func(t *testing.T) {
		d := newTestEmbedded(t, "Other Corp Guest")
		err := d.Activate()
		if !errors.Is(err, ErrNetworkRejected) {
			t.Errorf("Activate() error = %v, want ErrNetworkRejected", err)
		}
		if d.PoweredOn() {
			t.Error("PoweredOn() = true after failed activation")
		}
	})
}

func TestEmbeddedDevice_Describe(t *testing.T) {
	d := newTestEmbedded(t, "MD Ltd. HQ")
	got := d.Describe()
	want := "Embedded Device [ID: ED1, Name: Door Controller, Turned On: false, IP: 10.0.8.14, Network: MD Ltd. HQ]"
	if got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}
