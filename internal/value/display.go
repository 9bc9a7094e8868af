package value

import (
	"strconv"
	"strings"
)

// Display implementations. See spec §6 "Display format".

func (i Int) Display(Lookup) string { return strconv.FormatInt(i.V, 10) }

func (f Float) Display(Lookup) string { return strconv.FormatFloat(f.V, 'g', -1, 64) }

func (b Bool) Display(Lookup) string {
	if b.V {
		return "true"
	}
	return "false"
}

// Display wraps the contents in double quotes with a single space of
// padding on each side, e.g. `" hello world "`.
func (s String) Display(Lookup) string {
	var sb strings.Builder
	sb.WriteString(`" `)
	sb.WriteString(s.V)
	sb.WriteString(` "`)
	return sb.String()
}

// Display resolves any Symbol element against vars before rendering it,
// per spec §6: "list Display resolves any Symbol element against
// Variables before rendering".
func (l List) Display(vars Lookup) string {
	parts := make([]string, len(l.V))
	for i, v := range l.V {
		parts[i] = displayResolved(v, vars)
	}
	if len(parts) == 0 {
		return "[ ]"
	}
	return "[ " + strings.Join(parts, " ") + " ]"
}

func displayResolved(v Value, vars Lookup) string {
	if sym, ok := v.(Symbol); ok && vars != nil {
		if resolved, found := vars.Get(sym.V); found {
			return resolved.Display(vars)
		}
	}
	return v.Display(vars)
}

// Display renders a debug form of the token vector. Re-tokenizing this
// output (splitting on whitespace) and feeding it through read_block
// (after consuming the leading "{") reconstructs the same token
// sequence, satisfying spec §6's round-trip requirement.
func (b Block) Display(Lookup) string {
	if len(b.Tokens) == 0 {
		return "{ }"
	}
	return "{ " + strings.Join(b.Tokens, " ") + " }"
}

func (s Symbol) Display(Lookup) string { return s.V }
