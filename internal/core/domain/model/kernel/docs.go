// Package kernel holds the value objects shared by the drone fleet aggregates:
// UUID for audit run identifiers, Battery for charge levels and Weight for
// payload masses. All of them are immutable and invalid in their zero value.
package kernel
