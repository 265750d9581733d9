// Package view renders persisted computation results as a human-readable
// report.
//
// A Viewer walks four known result kinds — principal part, gap polynomial,
// BSD components, and the renormalization matrix — loads the most recent
// archive of each, and prints a titled section per kind. The first three
// are text records scoped by curve label; the matrix kind is a structured
// archive and global. Kinds are produced by independent pipelines, so a
// missing archive is not an error: its section is silently skipped and the
// report stays partial.
//
// Values persisted through the serialize package carry complex numbers as
// {real, imag} records; the viewer inverts that convention back to an
// "a + bi" display, and extracts the real part where only a magnitude is
// wanted.
package view
