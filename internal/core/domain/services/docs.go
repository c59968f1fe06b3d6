// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - LoadValidator: decides whether a medication item fits on a drone and
//     derives the drone state that follows from accepting it
//
// Validation is free of side effects; applying the resulting state and
// persisting it is left to the application layer.
package services
