// Package medication contains the medication Item carried by drones.
// Field formats are enforced here; whether an item fits on a drone is decided
// by the load validator in the domain services package.
package medication
