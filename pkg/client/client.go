package client

import (
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/conradsun/staffd/pkg/wire"
)

const prompt = "staffctl> "

// Client dials one dispatcher connection and drives a read-eval-print loop
// over it.
type Client struct {
	conn net.Conn
	buf  []byte
	line *liner.State
}

// Dial connects to addr (host:port) and prepares the readline state.
func Dial(addr string) (*Client, error) {
	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("client: dial %s: %w", addr, err)
	}
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &Client{conn: conn, buf: make([]byte, wire.BufferSize), line: line}, nil
}

// Close releases the readline state and the connection.
func (c *Client) Close() error {
	c.line.Close()
	return c.conn.Close()
}

// Run reads lines from the terminal until the user quits the readline
// prompt or the dispatcher closes the connection, printing one reply per
// line sent. It returns nil on a clean end-of-session, or the error that
// ended the loop.
func (c *Client) Run(out io.Writer) error {
	for {
		text, err := c.line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return nil
			}
			return fmt.Errorf("client: read input: %w", err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		c.line.AppendHistory(text)

		reply, err := c.Send(text)
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(out, "connection closed by server")
				return nil
			}
			return err
		}
		fmt.Fprint(out, reply)
	}
}

// Send writes one line to the dispatcher and returns the reply it sends
// back. Every reply, however many lines of wire-protocol text it contains,
// arrives in the single write the dispatcher makes for that request, so one
// bounded Read (mirroring the shared wire.BufferSize both sides agree on)
// is the whole reply; io.EOF signals the dispatcher closed the connection
// with nothing more to read.
func (c *Client) Send(line string) (string, error) {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	if _, err := c.conn.Write([]byte(line)); err != nil {
		return "", fmt.Errorf("client: write: %w", err)
	}
	n, err := c.conn.Read(c.buf)
	if n == 0 && err == io.EOF {
		return "", io.EOF
	}
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("client: read: %w", err)
	}
	return string(c.buf[:n]), nil
}
