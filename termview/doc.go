// Package termview renders engine snapshots as terminal frames styled with
// lipgloss: bar charts for sorting, a node table for shortest paths, and a
// shaded decision-boundary grid plus weight list for the trainer.
//
// Renderers are methods on Theme and only read the snapshots they are given.
// Use PlainTheme when writing to something that is not a terminal.
package termview
