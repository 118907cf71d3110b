/*
	Package voxmask provides types, constants, and functions that have no other
	dependencies and can be used by all packages within voxmask.  This includes
	the lattice coordinate type and logging.
*/
package voxmask
