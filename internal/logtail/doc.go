// Package logtail reads the most recent entries of the Enlace log file.
//
// The log is written by zap as one JSON object per line. Read extracts the
// last N raw lines in a single pass using a ring buffer, so memory stays
// proportional to N rather than to the file size. Parse decodes a line into
// an Entry, and Tail combines both with a minimum level filter.
//
// Lines that are not JSON (for example a truncated final write) are kept
// verbatim rather than dropped. A missing log file is not an error: there is
// simply nothing to show yet.
package logtail
