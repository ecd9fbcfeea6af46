// Package clipshape generates the closed outlines used to clip a live video
// overlay: circles, rounded rectangles, capsules, ellipses, regular polygons,
// hearts, clouds, organic blobs, and externally supplied outlines.
//
// The package never touches pixels. It produces Bézier paths that a host
// rasterises or hands to its toolkit as a clip region.
//
// # Shapes
//
// A [Shape] turns a rectangle into a [BezPath] holding exactly one closed
// contour, fitted to that rectangle. Every built-in shape, every combinator
// and every imported [Outline] implements Shape, and they can be used
// interchangeably.
//
// Shapes are values that don't change after construction. [Cloud] and
// [Blob] choose their control points at random when they are created and
// keep them for their lifetime; a new selection creates a new shape rather
// than modifying an existing one.
//
// # Animation
//
// An [Animation] maps a time value to a Shape. The package holds no clocks or
// timers: the host advances time on its own schedule and asks for the shape
// at that time. The combinators are:
//
//   - [Shrinkable] and [Pulse], which inset a shape's rectangle by a varying
//     amount
//   - [Rotated] and [Spin], which turn a shape about the rectangle's centre
//   - [Evolve], which moves a blob's anchors while keeping its control points
//
// [Animate] picks the default animation for a shape.
//
// # Kinds
//
// [Kind] names the shape algorithms in a fixed, cyclic order, together with
// the key that selects each in the host's menu. A [Factory] maps a Kind to a
// fresh Shape or Animation.
//
// # Coordinates
//
// All coordinates are y-down, as is usual for graphics. Positive angles turn
// clockwise on screen.
package clipshape
