// Package settings defines the neviweb130 options record and the merge that
// produces it.
//
// A Settings value is always fully populated. Merge builds one from the
// stored entry state (data overlaid with options) when the user has not
// submitted anything yet, falling back to the package defaults field by
// field, and returns the submission unchanged once there is one.
//
// Parse is the form layer in front of Merge: it coerces raw string input into
// a Settings value and rejects anything that is not a valid integer, boolean
// or notification mode.
package settings
