// Package easel implements the drawing-state engine behind an interactive
// 2D sketching surface.
//
// # Overview
//
// easel is the headless core of a paint application: it owns the scene log
// of drawn entities (freehand strokes, parametric shapes, text annotations),
// the pointer-gesture state machine that produces them, undo/redo snapshots,
// live resize-rescaling, dash-pattern generation, and resolution-independent
// PNG export. The widget tree, toolbars, dialogs, and event loop are the
// host application's concern; easel consumes pointer events, tool-config
// changes, resize notifications, and commands, and exposes drawability
// flags plus export results.
//
// # Quick Start
//
//	s := easel.NewSurface(1000, 800)
//
//	// Forward pointer events from the host toolkit.
//	s.PointerDown(easel.Pt(100, 200))
//	s.PointerMove(easel.Pt(140, 260))
//	s.PointerUp(easel.Pt(180, 240))
//
//	// Commands.
//	s.Undo()
//	s.Redo()
//	s.ExportPNG("sketch.png", 2)
//
// # Coordinate System
//
// Surface coordinates use a bottom-left origin with Y increasing upward,
// matching the windowing toolkits easel was designed to sit under. The
// exporter flips to the raster convention (top-left origin) internally.
//
// # Concurrency
//
// A Surface is single-threaded by design: pointer events, tool changes,
// resizes, and commands must arrive on one logical thread in order. Export
// operates on a deep snapshot of the scene log taken at call time, so the
// render and encode work may be moved off the interactive thread by the
// host.
package easel
