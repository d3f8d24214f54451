// Package quarkgl is a small software 3D engine for point-cloud visualization.
//
// It covers what a crystal-lattice viewer needs and nothing more: a scene of
// point clouds and line segments, a perspective camera, an orbit
// controller for interactive viewing, and a renderer that rasterizes into a
// caller-provided Target. There is no GPU abstraction.
//
// Pipeline (fixed):
//
//	Scene → View → Projection → Near clip → Rasterization (depth tested) → Target.
//
// All math is float32. The render hot path does not allocate once the depth
// buffer has been sized for the target.
package quarkgl
