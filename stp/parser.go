// Package stp reads the DIMACS STP text format (spec.md §6) into a
// *core.Graph. It is an external collaborator to the solver core: its
// only contract is handing over an immutable graph and terminal list.
package stp

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/arborist-go/steinertree/core"
)

// Parse reads a DIMACS STP document from r and returns the graph it
// describes. Vertex ids on the wire are 1-based; Parse converts them to
// 0-based before handing anything to core.NewGraph.
//
// Recognised top-level lines: "section <name>", "end", "cost <c>", "eof".
// Recognised lines inside "section graph": "nodes <n>", "edges <m>",
// "e <u> <v> <w>". Recognised lines inside "section terminals":
// "terminals <k>", "t <u>". "section comment" and "section coordinates"
// are scanned only far enough to find their "end".
func Parse(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	var (
		lineNum      int
		section      string
		sawGraph     bool
		sawTerminals bool
		n            int
		declaredM    int
		declaredK    int
		edges        []core.Edge
		terminals    []int
		knownCost    *int64
	)

scan:
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "section":
			if section != "" {
				return nil, parseErrorf(lineNum, ErrNestedSection, "section %q inside %q", fieldOrEmpty(fields, 1), section)
			}
			if len(fields) < 2 {
				return nil, parseErrorf(lineNum, ErrMalformedLine, "section without a name")
			}
			section = fields[1]

		case "end":
			if section == "" {
				return nil, parseErrorf(lineNum, ErrMalformedLine, "end outside any section")
			}
			section = ""

		case "eof":
			break scan

		case "cost":
			if len(fields) != 2 {
				return nil, parseErrorf(lineNum, ErrMalformedLine, "cost wants exactly one value")
			}
			c, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return nil, parseErrorf(lineNum, ErrMalformedLine, "cost value %q", fields[1])
			}
			knownCost = &c

		case "nodes":
			if section != "graph" || len(fields) != 2 {
				return nil, parseErrorf(lineNum, ErrMalformedLine, "nodes outside section graph")
			}
			v, err := strconv.Atoi(fields[1])
			if err != nil || v < 1 {
				return nil, parseErrorf(lineNum, ErrMalformedLine, "nodes value %q", fields[1])
			}
			n = v
			sawGraph = true

		case "edges":
			if section != "graph" || len(fields) != 2 {
				return nil, parseErrorf(lineNum, ErrMalformedLine, "edges outside section graph")
			}
			v, err := strconv.Atoi(fields[1])
			if err != nil || v < 0 {
				return nil, parseErrorf(lineNum, ErrMalformedLine, "edges value %q", fields[1])
			}
			declaredM = v

		case "e":
			if section != "graph" || len(fields) != 4 {
				return nil, parseErrorf(lineNum, ErrMalformedLine, "edge line wants u v w")
			}
			u, v, w, err := parseEdgeFields(fields[1], fields[2], fields[3])
			if err != nil {
				return nil, parseErrorf(lineNum, ErrMalformedLine, "edge fields %v", fields[1:])
			}
			if u < 1 || u > n || v < 1 || v > n {
				return nil, parseErrorf(lineNum, ErrVertexOutOfRange, "edge (%d,%d), n=%d", u, v, n)
			}
			edges = append(edges, core.Edge{U: u - 1, V: v - 1, Weight: w})

		case "terminals":
			if section != "terminals" || len(fields) != 2 {
				return nil, parseErrorf(lineNum, ErrMalformedLine, "terminals outside section terminals")
			}
			v, err := strconv.Atoi(fields[1])
			if err != nil || v < 0 {
				return nil, parseErrorf(lineNum, ErrMalformedLine, "terminals value %q", fields[1])
			}
			declaredK = v
			sawTerminals = true

		case "t":
			if section != "terminals" || len(fields) != 2 {
				return nil, parseErrorf(lineNum, ErrMalformedLine, "terminal line wants one vertex id")
			}
			v, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, parseErrorf(lineNum, ErrMalformedLine, "terminal id %q", fields[1])
			}
			if v < 1 || v > n {
				return nil, parseErrorf(lineNum, ErrVertexOutOfRange, "terminal %d, n=%d", v, n)
			}
			terminals = append(terminals, v-1)

		default:
			// dd lines inside "section coordinates" and anything inside
			// "section comment" land here; both are ignored by design.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if !sawGraph || !sawTerminals {
		return nil, parseErrorf(lineNum, ErrMissingSection, "graph=%v terminals=%v", sawGraph, sawTerminals)
	}
	if len(edges) != declaredM {
		return nil, parseErrorf(lineNum, ErrCountMismatch, "declared %d edges, saw %d", declaredM, len(edges))
	}
	if len(terminals) != declaredK {
		return nil, parseErrorf(lineNum, ErrCountMismatch, "declared %d terminals, saw %d", declaredK, len(terminals))
	}

	return core.NewGraph(n, edges, terminals, knownCost)
}

func parseEdgeFields(us, vs, ws string) (u, v int, w int64, err error) {
	u, err = strconv.Atoi(us)
	if err != nil {
		return 0, 0, 0, err
	}
	v, err = strconv.Atoi(vs)
	if err != nil {
		return 0, 0, 0, err
	}
	w, err = strconv.ParseInt(ws, 10, 64)
	if err != nil {
		return 0, 0, 0, err
	}
	return u, v, w, nil
}

func fieldOrEmpty(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
