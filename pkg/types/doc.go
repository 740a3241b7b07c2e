// Package types defines the wire-visible data model shared by the parser,
// query engine, store, and dispatcher: the employee Record, the Date it
// embeds, and the parsed Query a command line reduces to.
package types
