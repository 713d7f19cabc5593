// Package piechart implements a pie chart whose segment boundaries can be dragged.
//
// A Chart holds an ordered list of segments. Each segment is identified by its
// index and records the angle at which it starts, whether it is collapsed, and an
// opaque payload that is only forwarded to the Renderer. Dragging a boundary
// reflows the other segments under one of two policies:
//
//   - shifting: the dragged boundary pushes a chain of neighbours along so that
//     each keeps at least MinAngle separation from the one ahead of it.
//   - collapsing: closing a gap below MinAngle snaps the dragged boundary onto its
//     neighbour and collapses one of the two segments.
//
// Every reflow is computed from the snapshot taken when the drag started, so the
// outcome depends only on the final pointer position, not on the path taken.
//
// A Chart is not safe for concurrent use. Drive it from the goroutine that
// delivers pointer events.
package piechart
