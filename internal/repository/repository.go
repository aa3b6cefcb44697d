// Package repository owns access to the application's data.
//
// There is no real database behind this service: the only "table" is a
// fixed membership set of person identifiers, established at startup
// and never written. The package still follows the repository shape so
// a real store could slot in without touching services or handlers.
package repository
