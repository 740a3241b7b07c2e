package dispatcher

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/conradsun/staffd/pkg/log"
	"github.com/conradsun/staffd/pkg/metrics"
	"github.com/conradsun/staffd/pkg/parser"
	"github.com/conradsun/staffd/pkg/query"
	"github.com/conradsun/staffd/pkg/types"
	"github.com/conradsun/staffd/pkg/wire"
)

// Dispatcher owns the listening socket, the bounded connection table, and
// the single run-loop goroutine that drives the query engine.
type Dispatcher struct {
	listener   net.Listener
	engine     *query.Engine
	maxClients int

	registerCh   chan net.Conn
	unregisterCh chan string
	requestsCh   chan requestMsg
}

type requestMsg struct {
	connID string
	local  bool
	line   string
}

// New wires a Dispatcher around listener and engine. maxClients bounds the
// connection table; zero selects wire.MaxClients.
func New(listener net.Listener, engine *query.Engine, maxClients int) *Dispatcher {
	if maxClients <= 0 {
		maxClients = wire.MaxClients
	}
	return &Dispatcher{
		listener:     listener,
		engine:       engine,
		maxClients:   maxClients,
		registerCh:   make(chan net.Conn),
		unregisterCh: make(chan string),
		requestsCh:   make(chan requestMsg),
	}
}

// Run starts the accept loop, the local standard-input reader, and the run
// loop itself. It blocks until EXIT is honored from the local channel, at
// which point it tears down every connection and returns.
func (d *Dispatcher) Run() {
	stopAccept := make(chan struct{})
	go d.acceptLoop(stopAccept)
	go d.readLocal()

	d.runLoop(stopAccept)
}

func (d *Dispatcher) acceptLoop(stop chan struct{}) {
	for {
		conn, err := d.listener.Accept()
		if err != nil {
			select {
			case <-stop:
				return
			default:
				log.WithComponent("dispatcher").Warn().Err(err).Msg("accept failed")
				return
			}
		}
		d.registerCh <- conn
	}
}

// readLocal treats standard input as a privileged peer: every line read is
// dispatched with local=true. End-of-file is ignored, matching the
// original readiness loop's behaviour for a closed standard input.
func (d *Dispatcher) readLocal() {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, wire.BufferSize), wire.BufferSize)
	for scanner.Scan() {
		d.requestsCh <- requestMsg{local: true, line: scanner.Text()}
	}
}

func (d *Dispatcher) readConn(id string, conn net.Conn) {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, wire.BufferSize), wire.BufferSize)
	for scanner.Scan() {
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		d.requestsCh <- requestMsg{connID: id, line: line}
	}
	d.unregisterCh <- id
}

func (d *Dispatcher) runLoop(stopAccept chan struct{}) {
	conns := make(map[string]net.Conn)
	connLog := log.WithComponent("dispatcher")

	for {
		select {
		case conn := <-d.registerCh:
			if len(conns) >= d.maxClients {
				conn.Close()
				connLog.Warn().Str("remote", conn.RemoteAddr().String()).Msg("connection table full, closing")
				continue
			}
			id := uuid.New().String()
			conns[id] = conn
			metrics.ActiveConnections.Set(float64(len(conns)))
			connLog.Info().Str("conn_id", id).Str("remote", conn.RemoteAddr().String()).Msg("connection accepted")
			go d.readConn(id, conn)

		case id := <-d.unregisterCh:
			if conn, ok := conns[id]; ok {
				conn.Close()
				delete(conns, id)
				metrics.ActiveConnections.Set(float64(len(conns)))
				connLog.Info().Str("conn_id", id).Msg("connection closed")
			}

		case req := <-d.requestsCh:
			reply, exit := d.process(req)
			d.reply(conns, req, reply)
			if exit {
				close(stopAccept)
				d.listener.Close()
				for id, conn := range conns {
					conn.Close()
					delete(conns, id)
				}
				connLog.Info().Msg("exit command received, shutting down")
				return
			}
		}
	}
}

func (d *Dispatcher) process(req requestMsg) (string, bool) {
	timer := metrics.NewTimer()
	q, err := parser.Parse(req.line)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues("UNKNOWN", "parse_error").Inc()
		return query.ParseFailureReply(), false
	}
	if q.Command.LocalOnly() && !req.local {
		metrics.RequestsTotal.WithLabelValues(q.Command.String(), "denied").Inc()
		return query.ParseFailureReply(), false
	}

	result := d.engine.Execute(q, req.local)
	timer.ObserveDurationVec(metrics.CommandDuration, q.Command.String())

	outcome := "failed"
	if result.Success {
		outcome = "ok"
	}
	metrics.RequestsTotal.WithLabelValues(q.Command.String(), outcome).Inc()

	if result.Success {
		switch q.Command {
		case types.CommandAdd, types.CommandDel, types.CommandMod:
			metrics.RecordsTotal.Set(float64(d.engine.RecordCount()))
		}
	}

	return result.Reply, result.Exit
}

func (d *Dispatcher) reply(conns map[string]net.Conn, req requestMsg, reply string) {
	if req.local {
		if reply != "" {
			fmt.Fprintln(os.Stdout, reply)
		}
		return
	}
	conn, ok := conns[req.connID]
	if !ok {
		return
	}
	fmt.Fprintln(conn, reply)
}
