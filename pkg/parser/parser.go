package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/conradsun/staffd/pkg/types"
)

// ErrParse is returned for every rejected line. It carries no further detail
// because the wire protocol exposes exactly one parse-failure sentence.
var ErrParse = errors.New("parser: failed to parse user input for invalid command or info")

const (
	maxParams  = 32
	sortPrefix = "--sort:"
	globalFlag = "*"
)

var logLevelByName = map[string]types.LogLevel{
	"off":   types.LogOff,
	"fault": types.LogFault,
	"error": types.LogError,
	"info":  types.LogInfo,
	"debug": types.LogDebug,
}

var commandByName = map[string]types.Command{
	"ADD":  types.CommandAdd,
	"DEL":  types.CommandDel,
	"MOD":  types.CommandMod,
	"GET":  types.CommandGet,
	"LOG":  types.CommandLog,
	"HELP": types.CommandHelp,
	"EXIT": types.CommandExit,
}

// commandSpec describes which parameter kinds a command accepts.
type commandSpec struct {
	allowFields   bool
	allowGlobal   bool
	allowSort     bool
	allowLogLevel bool
	requireID     bool
}

var specByCommand = map[types.Command]commandSpec{
	types.CommandAdd:  {allowFields: true, requireID: true},
	types.CommandDel:  {allowFields: true, allowGlobal: true},
	types.CommandMod:  {allowFields: true, requireID: true},
	types.CommandGet:  {allowFields: true, allowGlobal: true, allowSort: true},
	types.CommandLog:  {allowLogLevel: true},
	types.CommandHelp: {},
	types.CommandExit: {},
}

// Parse tokenises line into a Query. Whitespace runs are collapsed, the
// command name is case-insensitive, and any parameter that cannot be
// classified under the command's allowed kinds — including a repeat of a
// once-only kind — fails the whole line.
func Parse(line string) (*types.Query, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrParse
	}

	command, ok := commandByName[strings.ToUpper(fields[0])]
	if !ok {
		return nil, ErrParse
	}
	spec := specByCommand[command]

	params := fields[1:]
	if len(params) > maxParams {
		params = params[:maxParams]
	}

	query := &types.Query{
		Command: command,
		Record:  &types.Record{},
	}

	sortSeen := false
	globalSeen := false
	logSeen := false

	for _, p := range params {
		switch {
		case spec.allowSort && strings.HasPrefix(p, sortPrefix):
			if sortSeen {
				return nil, ErrParse
			}
			kind, ok := parseSortKind(p[len(sortPrefix):])
			if !ok {
				return nil, ErrParse
			}
			query.Sort = kind
			sortSeen = true

		case spec.allowGlobal && p == globalFlag:
			if globalSeen {
				return nil, ErrParse
			}
			query.All = true
			globalSeen = true

		case spec.allowLogLevel && isLogLevel(p):
			if logSeen {
				return nil, ErrParse
			}
			query.Level = logLevelByName[p]
			logSeen = true

		case spec.allowFields && isFieldAssign(p):
			if err := applyField(query.Record, p); err != nil {
				return nil, ErrParse
			}

		default:
			return nil, ErrParse
		}
	}

	if spec.requireID && query.Record.ID == 0 {
		return nil, ErrParse
	}

	return query, nil
}

func parseSortKind(suffix string) (types.SortKind, bool) {
	switch suffix {
	case "id":
		return types.SortByID, true
	case "date":
		return types.SortByDate, true
	default:
		return types.SortNone, false
	}
}

func isLogLevel(tok string) bool {
	_, ok := logLevelByName[tok]
	return ok
}

func isFieldAssign(tok string) bool {
	idx := strings.IndexByte(tok, ':')
	if idx <= 0 {
		return false
	}
	switch tok[:idx] {
	case "id", "name", "date", "dept", "pos":
		return true
	default:
		return false
	}
}

func applyField(rec *types.Record, tok string) error {
	idx := strings.IndexByte(tok, ':')
	field, value := tok[:idx], tok[idx+1:]
	if value == "" {
		return ErrParse
	}

	switch field {
	case "id":
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil || id == 0 {
			return ErrParse
		}
		rec.ID = id

	case "name":
		if !isLettersOnly(value) {
			return ErrParse
		}
		rec.Name = value

	case "date":
		date, ok := parseDate(value)
		if !ok {
			return ErrParse
		}
		rec.Date = date

	case "dept":
		rec.Department = value

	case "pos":
		rec.Position = value
	}
	return nil
}

func isLettersOnly(s string) bool {
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}

// parseDate validates and decodes a strict YYYY-MM-DD literal: digits at
// every non-separator position, '-' at indices 4 and 7.
func parseDate(s string) (types.Date, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return types.Date{}, false
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return types.Date{}, false
		}
	}
	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[5:7])
	day, _ := strconv.Atoi(s[8:10])
	return types.Date{Year: year, Month: month, Day: day}, true
}
