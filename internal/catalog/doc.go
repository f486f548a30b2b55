// Package catalog builds and queries the set of installable package names.
//
// A Catalog is sorted by byte value, holds no duplicates and no empty
// strings, and is never mutated after construction. Because every prefix
// match set is a contiguous run in sorted order, Complete locates the run
// with a binary search and scans forward only while entries still match.
//
// Names come from Sources. Build never fails: a source that cannot be read
// contributes nothing and the failure is logged at debug level.
package catalog
