// Package diag carries positioned compiler diagnostics and renders them the
// way the velocity CLI prints them:
//
//	main.vel:3:9: error: expected ';', but got <identifier>
//	var x = 1 2;
//	        ^~~
//
// Error is a single diagnostic, List aggregates several (both implement
// error), and Renderer writes the three-line colored form above. Color is
// applied with lipgloss and can be switched off for plain output.
package diag
