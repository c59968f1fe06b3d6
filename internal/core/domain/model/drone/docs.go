// Package drone contains the Drone aggregate and the drone state machine.
//
// A Drone is registered IDLE. The load validator moves it to LOADING or LOADED
// as medication items are accepted; the remaining states of the delivery cycle
// (DELIVERING, DELIVERED, RETURNING) are reached one step at a time through
// TransitionTo. The battery auditor uses NeedsLowBatteryAlert and
// NeedsAlertReset to raise at most one alert per low-battery episode.
package drone
