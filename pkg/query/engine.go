package query

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"github.com/conradsun/staffd/pkg/database"
	"github.com/conradsun/staffd/pkg/log"
	"github.com/conradsun/staffd/pkg/types"
)

const parseFailureReply = "Failed to parse user input for invalid command or info."

var helpUsage = []string{
	"Use 'ADD' cmd to add a staff to the database.\n" +
		"\te.g. [ADD id:10086 name:Zhangsan date:2022-05-11 dept:ZTA pos:engineer]\n",
	"Use 'DEL' cmd to remove a/all staff from the database.\n" +
		"\te.g. [DEL id:10086] to remove a staff, or [DEL *] to clear the database.\n",
	"Use 'MOD' cmd to modify a staff's info.\n" +
		"\te.g. [MOD id:10086 dept:CWPP name:Lisi]\n",
	"Use 'GET' cmd to obtain a/all staff's info.\n" +
		"\te.g. [GET id:10086] to obtain a staff's info, or [GET name:Lisi dept:ZTA] to obtain one or more staff's info, " +
		"or [GET *] to print all staff's info.\n" +
		"\tIf you want output being sorted, use '--sort:id' or '--sort:date', e.g. [GET --sort:id *] to sort output by staff id.\n",
	"Use 'LOG' cmd [local channel only] to set the log level.\n" +
		"\te.g. [LOG debug] to set log level to debug. Levels are [debug, info, error, fault, off].\n",
}

const helpFooter = "The above commands are not case sensitive.\n"

// Result is what Execute hands back to the dispatcher: the text to send on
// the originating connection, and whether EXIT was just honored (in which
// case the dispatcher must tear down and stop, not reply further).
type Result struct {
	Reply   string
	Exit    bool
	Success bool
}

// Engine binds a database to the four CRUD commands plus LOG/HELP/EXIT.
type Engine struct {
	db *database.Database
}

// New builds an Engine over db.
func New(db *database.Database) *Engine {
	return &Engine{db: db}
}

// RecordCount reports how many employee records the underlying database
// currently holds, for callers that export it as a gauge.
func (e *Engine) RecordCount() uint64 {
	return e.db.Count()
}

// ParseFailureReply is the sentence used whenever the parser rejects a
// line, local-only commands arrive from a remote peer, or any other
// rejection prior to dispatch occurs.
func ParseFailureReply() string {
	return parseFailureReply
}

// Execute runs query against the database and returns the reply text.
// local reports whether the request arrived on the privileged standard
// input channel; the dispatcher is expected to have already rejected
// LOG/EXIT from non-local callers before calling Execute.
func (e *Engine) Execute(q *types.Query, local bool) Result {
	switch q.Command {
	case types.CommandAdd:
		reply, ok := e.add(q.Record)
		return Result{Reply: reply, Success: ok}
	case types.CommandDel:
		reply, ok := e.del(q)
		return Result{Reply: reply, Success: ok}
	case types.CommandMod:
		reply, ok := e.mod(q.Record)
		return Result{Reply: reply, Success: ok}
	case types.CommandGet:
		reply, ok := e.get(q)
		return Result{Reply: reply, Success: ok}
	case types.CommandLog:
		log.SetLevel(q.Level)
		return Result{Reply: "LOG level is setted.", Success: true}
	case types.CommandHelp:
		return Result{Reply: e.help(), Success: true}
	case types.CommandExit:
		return Result{Exit: true, Success: true}
	default:
		return Result{Reply: parseFailureReply}
	}
}

func (e *Engine) add(rec *types.Record) (string, bool) {
	if err := e.db.Add(rec); err != nil {
		return fmt.Sprintf("Failed to add the staff [%d].", rec.ID), false
	}
	return fmt.Sprintf("The staff [%d] is added.", rec.ID), true
}

func (e *Engine) del(q *types.Query) (string, bool) {
	if q.All {
		if err := e.db.RemoveAll(); err != nil {
			return "Failed to remove the staff.", false
		}
		return "All staffs are removed.", true
	}
	id := q.Record.ID
	if err := e.db.Remove(id); err != nil {
		return fmt.Sprintf("Failed to remove the staff [%d].", id), false
	}
	return fmt.Sprintf("The staff [%d] is removed.", id), true
}

func (e *Engine) mod(rec *types.Record) (string, bool) {
	if err := e.db.Modify(rec.ID, rec); err != nil {
		return fmt.Sprintf("Failed to modify info of the staff [%d].", rec.ID), false
	}
	return fmt.Sprintf("Info of the staff [%d] is modified.", rec.ID), true
}

func (e *Engine) get(q *types.Query) (string, bool) {
	if q.All || q.Record.ID == 0 {
		results := e.db.Find(q.Record)
		if len(results) == 0 {
			return "No items are found.", false
		}
		sortRecords(results, q.Sort)
		var b strings.Builder
		for _, r := range results {
			b.WriteString(formatRecord(r))
		}
		return b.String(), true
	}

	rec, err := e.db.GetByID(q.Record.ID)
	if err != nil {
		return fmt.Sprintf("Staff with id [%d] is not found.", q.Record.ID), false
	}
	return formatRecord(rec), true
}

func (e *Engine) help() string {
	var b strings.Builder
	for _, u := range helpUsage {
		b.WriteString(u)
	}
	b.WriteString(helpFooter)
	return b.String()
}

// sortRecords orders results in place per kind, stable with respect to
// storage-visit (bucket-walk) order for equal keys.
func sortRecords(results []*types.Record, kind types.SortKind) {
	switch kind {
	case types.SortByID:
		sort.SliceStable(results, func(i, j int) bool {
			return cmp.Compare(results[i].ID, results[j].ID) < 0
		})
	case types.SortByDate:
		sort.SliceStable(results, func(i, j int) bool {
			return cmp.Compare(results[i].Date.Key(), results[j].Date.Key()) < 0
		})
	}
}

// formatRecord renders one record on its own line, per the wire protocol's
// fixed layout. Unset string and date fields render as the literal (null).
func formatRecord(r *types.Record) string {
	return fmt.Sprintf(
		"staff id: %d, name: %s, date: %s, department: %s, position: %s.\n",
		r.ID,
		types.FieldOrNull(r.Name),
		types.DateOrNull(r.Date),
		types.FieldOrNull(r.Department),
		types.FieldOrNull(r.Position),
	)
}
