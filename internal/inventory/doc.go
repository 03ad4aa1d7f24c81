// Package inventory loads the MD Ltd. device inventory from a flat
// text file into a device registry.
//
// # File Format
//
// One record per line, comma-separated, no header, no escaping of
// embedded commas. The first field's prefix selects the variant:
//
//	SW9,Pulse One,false,87%          smartwatch
//	P12,Office Desktop,true,Linux    personal computer
//	ED4,Door Node,10.0.8.14,MD Ltd. HQ   embedded network device
//
// Prefixes are checked in the order SW, P, ED so that ids beginning
// with "P" cannot shadow the other prefixes.
//
// # Failure Policy
//
// A missing file aborts the load with ErrFileNotFound. Everything at
// row level is recovered: malformed rows are skipped, unrecognised
// prefixes discarded, and valid rows beyond the registry's capacity
// parsed but not appended. The Result summary accounts for every row.
package inventory
