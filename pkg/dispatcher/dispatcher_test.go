package dispatcher

import (
	"bufio"
	"io"
	"net"
	"testing"
	"time"

	"github.com/conradsun/staffd/pkg/database"
	"github.com/conradsun/staffd/pkg/query"
)

func startTestDispatcher(t *testing.T, maxClients int) (addr string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	db, err := database.Open(8)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	d := New(ln, query.New(db), maxClients)
	go d.Run()
	return ln.Addr().String()
}

func dial(t *testing.T, addr string) net.Conn {
	t.Helper()
	conn, err := net.DialTimeout("tcp", addr, 2*time.Second)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	return conn
}

func sendAndRead(t *testing.T, conn net.Conn, line string) string {
	t.Helper()
	if _, err := conn.Write([]byte(line + "\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	reply, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	return reply
}

func TestExtraConnectionAcceptedThenClosed(t *testing.T) {
	addr := startTestDispatcher(t, 2)

	a := dial(t, addr)
	defer a.Close()
	b := dial(t, addr)
	defer b.Close()

	// Give the run loop a moment to register the first two connections
	// before the third dials in over capacity.
	time.Sleep(50 * time.Millisecond)

	c := dial(t, addr)
	defer c.Close()
	c.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, 1)
	_, err := c.Read(buf)
	if err != io.EOF {
		t.Fatalf("expected EOF for over-capacity connection, got %v", err)
	}
}

func TestRemoteExitRejectedServerKeepsRunning(t *testing.T) {
	addr := startTestDispatcher(t, 8)
	conn := dial(t, addr)
	defer conn.Close()

	reply := sendAndRead(t, conn, "EXIT")
	if reply != "Failed to parse user input for invalid command or info.\n" {
		t.Fatalf("EXIT over TCP reply = %q, want parse-failure sentence", reply)
	}

	reply = sendAndRead(t, conn, "ADD id:1 name:Ada")
	if reply != "The staff [1] is added.\n" {
		t.Fatalf("server stopped responding after rejected EXIT: got %q", reply)
	}
}

func TestRemoteLogRejected(t *testing.T) {
	addr := startTestDispatcher(t, 8)
	conn := dial(t, addr)
	defer conn.Close()

	reply := sendAndRead(t, conn, "LOG debug")
	if reply != "Failed to parse user input for invalid command or info.\n" {
		t.Fatalf("LOG over TCP reply = %q, want parse-failure sentence", reply)
	}
}

func TestConcurrentClientsNoCrossTalk(t *testing.T) {
	addr := startTestDispatcher(t, 8)
	a := dial(t, addr)
	defer a.Close()
	b := dial(t, addr)
	defer b.Close()

	for i := 0; i < 10; i++ {
		ra := sendAndRead(t, a, "ADD id:101 name:Ada")
		rb := sendAndRead(t, b, "ADD id:202 name:Bea")
		if i == 0 {
			if ra != "The staff [101] is added.\n" {
				t.Fatalf("client A got %q", ra)
			}
			if rb != "The staff [202] is added.\n" {
				t.Fatalf("client B got %q", rb)
			}
		} else {
			if ra != "Failed to add the staff [101].\n" {
				t.Fatalf("client A got %q on repeat", ra)
			}
			if rb != "Failed to add the staff [202].\n" {
				t.Fatalf("client B got %q on repeat", rb)
			}
		}
	}
}

func TestProcessRejectsLocalOnlyCommandsFromRemote(t *testing.T) {
	db, err := database.Open(8)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()
	d := New(ln, query.New(db), 8)

	reply, exit := d.process(requestMsg{local: false, line: "EXIT"})
	if exit {
		t.Fatalf("remote EXIT must not signal shutdown")
	}
	if reply != query.ParseFailureReply() {
		t.Fatalf("reply = %q, want parse-failure sentence", reply)
	}

	reply, exit = d.process(requestMsg{local: true, line: "EXIT"})
	if !exit {
		t.Fatalf("local EXIT must signal shutdown")
	}
	_ = reply
}
