// Package annotate formats annotation datasets into the plain-text
// configuration files consumed by the iTOL batch interface.
//
// Every annotation document has the same shape: a tag line naming the
// annotation kind, a SEPARATOR declaration, a block of KEY<delim>VALUE
// settings, a DATA marker and the delimiter-joined data rows. One
// builder exists per annotation kind; builders only assemble a Dataset,
// rendering and file writing stay on the Dataset itself so the package
// is side-effect free until WriteFile is called.
package annotate
