// Package diag defines the diagnostic model shared by the lexer and driver.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced while scanning source files.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, or CLI integration.
// Rendering responsibilities live in internal/diagfmt; orchestration lives in
// internal/driver.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; the offending character is interpolated
//     into the message, as in "unexpected token `@`".
//   - Primary span – the canonical source.Span pointing to the issue,
//     in character units.
//   - Notes – optional secondary spans/messages for additional context.
//
// All lexical failures are recoverable: the lexer records a Diagnostic and
// keeps producing tokens. Accumulation order in a Bag is the order in which
// the problems were encountered.
package diag
