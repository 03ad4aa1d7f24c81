package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/mdltd/device-inventory/internal/device"
)

// Variant prefixes in the inventory file. Prefix checks are ordered
// SW, then P, then ED: "P" matches any id starting with "P", so it
// must only be tried after "SW" fails.
const (
	prefixWearable = "SW"
	prefixComputer = "P"
	prefixEmbedded = "ED"
)

// Minimum field counts per variant row.
const (
	wearableFields = 4 // id, name, poweredOn, battery
	computerFields = 3 // id, name, poweredOn (+ optional OS)
	embeddedFields = 4 // id, name, ip, network
)

// Result reports what a load did, in the spirit of a parse summary:
// rows are accounted for exactly once.
type Result struct {
	// Loaded is the number of devices appended to the registry.
	Loaded int

	// Skipped is the number of rows with a recognised prefix that
	// failed to parse or validate.
	Skipped int

	// Discarded is the number of rows with an unrecognised prefix.
	Discarded int

	// Overflow is the number of valid rows parsed after the registry
	// reached capacity. They are parsed but not appended, and raise
	// no error.
	Overflow int
}

// Loader reads a flat inventory file and fills a device registry.
//
// The file is plain text, one record per line, comma-separated, no
// header and no escaping of embedded commas. The first field's prefix
// selects the variant. Malformed rows are skipped individually;
// loading always continues with the next row.
type Loader struct {
	logger device.Logger
}

// NewLoader creates an inventory loader.
func NewLoader() *Loader {
	return &Loader{logger: noopLogger{}}
}

// SetLogger sets the logger for the loader.
func (l *Loader) SetLogger(logger device.Logger) {
	l.logger = logger
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// LoadFile reads the inventory file at path and appends its devices
// to reg in file order.
//
// A missing file fails with ErrFileNotFound. Row-level failures never
// do: malformed rows are skipped, unrecognised prefixes discarded, and
// valid rows beyond the registry's capacity parsed but not appended.
func (l *Loader) LoadFile(path string, reg *device.Registry) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Result{}, fmt.Errorf("reading inventory file: %w", err)
	}

	var result Result
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		d, err := l.ParseRow(line)
		switch {
		case errors.Is(err, errUnrecognisedPrefix):
			result.Discarded++
			l.logger.Debug("row discarded", "line", i+1)
			continue
		case err != nil:
			result.Skipped++
			l.logger.Debug("row skipped", "line", i+1, "error", err)
			continue
		}

		if addErr := reg.Add(d); addErr != nil {
			if errors.Is(addErr, device.ErrCapacityExceeded) {
				// Overflow during load is not an error: the row was
				// parsed to validate cost but is simply not kept.
				result.Overflow++
				continue
			}
			return result, addErr
		}
		result.Loaded++
	}

	l.logger.Info("inventory loaded",
		"path", path,
		"loaded", result.Loaded,
		"skipped", result.Skipped,
		"discarded", result.Discarded,
		"overflow", result.Overflow,
	)
	return result, nil
}

// ParseRow turns a single inventory line into a device.
//
// The line is split on commas with no escaping and no field trimming:
// fields keep their whitespace verbatim, so a padded boolean or number
// is a malformed row, not a recoverable one. Dispatch is on the first
// field's prefix: SW → Wearable, P → Computer, ED → EmbeddedDevice, in
// that order. Any other prefix returns an unrecognised-prefix error;
// field problems return an error wrapping ErrMalformedRow.
//
// Wearables are wired to the loader's logger, so low-battery rows
// notify already during parsing.
func (l *Loader) ParseRow(line string) (device.Device, error) {
	fields := strings.Split(line, ",")

	switch {
	case strings.HasPrefix(fields[0], prefixWearable):
		return l.parseWearable(fields)
	case strings.HasPrefix(fields[0], prefixComputer):
		return parseComputer(fields)
	case strings.HasPrefix(fields[0], prefixEmbedded):
		return parseEmbedded(fields)
	default:
		return nil, fmt.Errorf("%w: %q", errUnrecognisedPrefix, fields[0])
	}
}

// parseWearable expects: id, name, poweredOn, battery.
// The battery field may carry a trailing "%", stripped before parsing.
func (l *Loader) parseWearable(fields []string) (device.Device, error) {
	if len(fields) < wearableFields {
		return nil, fmt.Errorf("%w: wearable row needs %d fields, got %d",
			ErrMalformedRow, wearableFields, len(fields))
	}

	poweredOn, err := strconv.ParseBool(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: powered-on flag %q", ErrMalformedRow, fields[2])
	}

	battery, err := strconv.Atoi(strings.TrimSuffix(fields[3], "%"))
	if err != nil {
		return nil, fmt.Errorf("%w: battery level %q", ErrMalformedRow, fields[3])
	}

	w, err := device.NewWearable(fields[0], fields[1], poweredOn, battery, l.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}
	return w, nil
}

// parseComputer expects: id, name, poweredOn, and an optional
// operating system as the fourth field.
func parseComputer(fields []string) (device.Device, error) {
	if len(fields) < computerFields {
		return nil, fmt.Errorf("%w: computer row needs %d fields, got %d",
			ErrMalformedRow, computerFields, len(fields))
	}

	poweredOn, err := strconv.ParseBool(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: powered-on flag %q", ErrMalformedRow, fields[2])
	}

	var operatingSystem string
	if len(fields) > computerFields {
		operatingSystem = fields[3]
	}

	return device.NewComputer(fields[0], fields[1], poweredOn, operatingSystem), nil
}

// parseEmbedded expects: id, name, ipAddress, networkName.
func parseEmbedded(fields []string) (device.Device, error) {
	if len(fields) < embeddedFields {
		return nil, fmt.Errorf("%w: embedded row needs %d fields, got %d",
			ErrMalformedRow, embeddedFields, len(fields))
	}

	d, err := device.NewEmbeddedDevice(fields[0], fields[1], fields[2], fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}
	return d, nil
}
