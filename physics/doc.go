// Package physics holds the process-wide physical constants shared by every
// chain model, together with the two tiny helpers built directly on them.
//
// The constants are exact CODATA 2018 SI values, so energies come out in
// joules when temperatures are given in kelvin and lengths in meters.
package physics
