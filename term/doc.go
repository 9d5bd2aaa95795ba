// SPDX-License-Identifier: MIT

// Package term is a small curses-style terminal layer.
//
// MAIN DESCRIPTION:
//   - A Screen owns an input stream, an output stream and a back buffer of
//     character cells. Windows draw into the back buffer; Refresh sends the
//     cells that changed since the previous Refresh to the output as ANSI
//     escape sequences.
//   - A Window is an opaque handle onto a rectangle of the screen with its own
//     cursor and attributes. SubWindow carves a rectangle out of a parent
//     window (coordinates relative to the parent) and shares its cells.
//   - Input is read from the input stream: GetCh returns one character,
//     GetNStr one line bounded to n bytes.
//
// Terminal handling:
//   - When the streams are terminals, Raw/Cooked switch the input mode with
//     golang.org/x/term and the size comes from the output terminal. On Unix
//     a SIGWINCH handler (golang.org/x/sys/unix) re-reads the size, resizes
//     the buffers and signals Resized.
//   - Any other io.Reader/io.Writer pair works too (pipes, buffers); the size
//     is then fixed by WithSize, and Raw/Cooked report ErrNotTerminal.
//
// Coordinates are (y, x) = (row, column), zero-based, as in curses.
// All methods are safe for concurrent use; they serialise on the Screen.
package term
