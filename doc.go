// Package vector provides a growable vector of owned strings for building a
// program's argument list and environment, and for handing them to the
// operating system to replace the running process.
//
// A Vector always stores its own copy of every string, so callers may reuse
// their buffers freely:
//
//	argv := vector.New()
//	_ = argv.Add("/bin/sh")
//	_ = argv.Add("-c")
//	_ = argv.Add("echo hello")
//
//	// Does not return on success
//	err := vector.Exec("/bin/sh", argv)
//	log.Fatalf("could not execute /bin/sh: %v", err)
//
// # Splitting
//
// SplitMulti tokenizes a string at runs of any separator character. Passing
// an existing vector reuses its storage, which keeps a loop that splits many
// lines from reallocating:
//
//	var fields *vector.Vector
//	for _, line := range lines {
//	    fields, err = vector.SplitMulti(line, " \t", fields)
//	    ...
//	}
//
// Split is the single-separator variant that keeps empty fields.
//
// # Capacity
//
// Len and Cap report the number of entries and reserved slots. Clear drops
// the entries but keeps the slots; Free drops both. Resize sets the capacity
// exactly and truncates when shrinking below Len. Growth is bounded by
// WithMaxCapacity (MaxCapacity by default); requests past the bound fail with
// ErrAllocation and leave the vector unchanged.
//
// # Environments
//
// Environment vectors hold NAME=value entries. ReadEnvDir, ApplyEnvDir and
// WriteEnvDir speak the envdir directory format used by daemontools and
// runit: one file per variable, the first line being the value.
// WatchEnvDir reports changes to such a directory.
//
// ReadFile and WriteFile store a vector as NUL-terminated entries, the
// layout of /proc/<pid>/cmdline and /proc/<pid>/environ.
//
// # Concurrency
//
// A Vector is not safe for concurrent use. Guard shared vectors with a mutex.
package vector
