// Package output provides structured output handling for the journey2md CLI.
//
// # Printer
//
// Printer switches between human-readable and JSON output:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Path(destination)            // one line per written file
//	printer.Warn("skipped %s: %v", src, err)
//	printer.Error(err)
//
// In JSON mode paths and warnings are suppressed; the command writes a
// single result document with WriteJSON instead. Errors are written as
// {"error": "message", "code": N}.
//
// Human output is styled with lipgloss and falls back to plain text when
// the writer is not a terminal or --color never is given.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success, including runs that skipped malformed entries
//	output.ExitUserError   // 1: Missing source/target directory, bad arguments
//	output.ExitSystemError // 2: I/O failure while writing
//	output.ExitConflict    // 3: Destination already exists
//
// The error constructors (NewUserError, NewSystemErrorWithCause, NewConflictError)
// carry these codes through to the process exit status.
package output
