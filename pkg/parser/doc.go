// Package parser tokenises one request line into a types.Query: a command
// name plus a bag of sort/global/log/field parameters. Parsing never
// returns a partial result — a line either yields a complete Query or an
// error, and the caller (pkg/dispatcher) is responsible for turning that
// error into the wire-level reply sentence (query.ParseFailureReply). Only
// the first 32 parameters of a line are parsed; any beyond those are
// ignored.
package parser
