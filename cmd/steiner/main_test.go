package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleSTP = `section graph
nodes 3
edges 3
e 1 2 1
e 2 3 1
e 1 3 5
end
section terminals
terminals 2
t 1
t 3
end
cost 2
eof
`

func TestRun_EricksonTriangle(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-el", "-list", "-workers", "1"}, strings.NewReader(triangleSTP), &out)

	require.Equal(t, 0, code)
	lines := out.String()
	assert.Contains(t, lines, "input: n = 3, m = 3, k = 2, cost = 2")
	assert.Contains(t, lines, "terminals: 1 3")
	assert.Contains(t, lines, "[cost: 2]")
	assert.Contains(t, lines, `"1 2"`)
	assert.Contains(t, lines, `"2 3"`)
	assert.Contains(t, lines, "num threads: 1")
}

func TestRun_EricksonWithoutList(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-erickson"}, strings.NewReader(triangleSTP), &out)

	require.Equal(t, 0, code)
	assert.NotContains(t, out.String(), "solution:")
}

func TestRun_DijkstraDemo(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-dijkstra", "-seed", "1"}, strings.NewReader(triangleSTP), &out)

	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "dijkstra: source = ")
}

func TestRun_NoModeSelected(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{}, strings.NewReader(triangleSTP), &out)
	assert.Equal(t, 2, code)
}

func TestRun_MalformedInput(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-el"}, strings.NewReader("section graph\nnodes 0\n"), &out)
	assert.Equal(t, 1, code)
}

func TestRun_CostMismatch(t *testing.T) {
	bad := strings.Replace(triangleSTP, "cost 2", "cost 99", 1)
	var out bytes.Buffer
	code := run([]string{"-el"}, strings.NewReader(bad), &out)
	assert.Equal(t, 1, code)
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-h"}, strings.NewReader(""), &out)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "usage: steiner")
}
