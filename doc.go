// Package mdl renders 3D scenes described by an ordered list of drawing and
// transform commands, optionally as an animation.
//
// # Overview
//
// A [Script] holds the command list and the symbol table produced by a scene
// parser. [Run] decides whether the script describes a still image or an
// animation, computes the value of every animated parameter (knob) for
// every frame, and then executes the command list once per frame:
//
//	s, err := mdl.LoadScriptFile("scene.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := mdl.Run(context.Background(), s)
//
// # Pipeline
//
//   - [FirstPass] scans for frames, basename and vary and returns a [Plan].
//   - [SecondPass] builds the [Schedule]: per frame, the linearly
//     interpolated value of each knob inside its vary window.
//   - [Validate] checks every command's arguments and the push/pop depth.
//   - The frame driver resets the canvas, depth buffer and [Stack] for each
//     frame, writes that frame's knob values into the symbol table, replays
//     the commands, and persists the frame as [FrameName].
//   - After the last frame the images are assembled into one animation.
//
// No frame is rendered until all three checks pass, so an invalid script
// writes nothing.
//
// # Coordinate System
//
// Geometry is in pixel units with the origin at the bottom-left of the
// canvas, x to the right, y up and z towards the viewer. move, scale and
// rotate post-multiply the top of the transform stack (top = top * M), so
// each transform acts in the local coordinates established by the commands
// before it. Rotation angles are in degrees.
//
// # Rendering
//
// Rasterization is delegated to a [render.Backend]; the built-in "software"
// back-end fills flat-shaded triangles with a depth buffer and draws lines.
// Animations are assembled into a GIF by package anim.
//
// # Concurrency
//
// By default frames are rendered in order on the calling goroutine.
// [WithWorkers] renders frames in parallel; each frame then works on its own
// snapshot of the symbol table, holding the knob values a sequential run
// would have at that frame, and on its own transform stack and canvas. The
// assembled animation keeps frame order.
package mdl
