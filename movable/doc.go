// Package movable models objects on a grid that can be pushed in a
// direction, such as boxes shoved by a robot, and walls that cannot.
//
// An Object is a mutable (position, glyph) pair. A PositionMap indexes
// objects by coordinate; no two objects share a position. CanMove answers
// whether the whole chain of objects in front of an object could shift one
// step, and Push performs that shift.
//
// Errors:
//
//   - ErrCycleDetected: the chain walk in CanMove revisited more positions
//     than the map holds, which only happens when map keys disagree with the
//     objects' own positions.
package movable
