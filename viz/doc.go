// Package viz renders graphs and algorithm results as styled terminal
// text. It is strictly presentation: every function takes finished values
// from core, traverse, or shortest and returns a string, so the
// algorithms stay free of formatting concerns and the renderings stay
// trivially testable.
//
// Styling goes through a Theme of lipgloss styles. Plain() is an
// unstyled theme producing the exact glyphs with no ANSI sequences,
// which is what the tests pin; Ocean() is the colored default the CLI
// uses on a terminal.
package viz
