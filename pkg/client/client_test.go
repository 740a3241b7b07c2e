package client

import (
	"bufio"
	"io"
	"net"
	"testing"
	"time"
)

func startEchoServer(t *testing.T, reply string) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		r := bufio.NewReader(conn)
		for {
			_, err := r.ReadString('\n')
			if err != nil {
				return
			}
			if _, err := conn.Write([]byte(reply)); err != nil {
				return
			}
		}
	}()
	t.Cleanup(func() { ln.Close() })
	return ln.Addr().String()
}

func TestSendAppendsNewlineAndReturnsReply(t *testing.T) {
	addr := startEchoServer(t, "staff id: 1, name: Ada, date: (null), department: (null), position: (null).\n")
	c, err := Dial(addr)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.Close()

	reply, err := c.Send("GET id:1")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	want := "staff id: 1, name: Ada, date: (null), department: (null), position: (null).\n"
	if reply != want {
		t.Fatalf("reply = %q, want %q", reply, want)
	}
}

func TestSendReturnsWholeMultiLineReply(t *testing.T) {
	want := "staff id: 1, name: Ada, date: (null), department: (null), position: (null).\n" +
		"staff id: 2, name: Bea, date: (null), department: (null), position: (null).\n"
	addr := startEchoServer(t, want)
	c, err := Dial(addr)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.Close()

	reply, err := c.Send("GET --sort:id *")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if reply != want {
		t.Fatalf("reply = %q, want %q", reply, want)
	}
}

func TestSendOnClosedConnectionReportsEOF(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		conn.Close()
	}()

	c, err := Dial(ln.Addr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.Close()

	time.Sleep(50 * time.Millisecond)
	_, err = c.Send("HELP")
	if err != io.EOF {
		t.Fatalf("Send on closed conn = %v, want io.EOF", err)
	}
}
