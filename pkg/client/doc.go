/*
Package client implements the terminal side of the wire protocol: dial the
dispatcher, read one line at a time with readline-style editing and
history, send it, print whatever comes back.

The client carries no protocol state between requests. Each line is its own
round trip: write the line plus a trailing newline, block for a reply up to
wire.BufferSize bytes, print it verbatim. A zero-length read means the
dispatcher closed the connection; the client reports that and returns.
*/
package client
