package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/network"
)

type cli struct {
	t    *testing.T
	file string
}

func newCLI(t *testing.T) *cli {
	return &cli{t: t, file: filepath.Join(t.TempDir(), "town.net")}
}

// run executes one subcommand against the test file.
func (c *cli) run(sub string, args ...string) (code int, out, errOut string) {
	c.t.Helper()
	var o, e bytes.Buffer
	argv := append([]string{COMMAND_NAME, sub, "-file", c.file}, args...)
	code = _main(argv, &o, &e)
	return code, o.String(), e.String()
}

func (c *cli) mustRun(sub string, args ...string) string {
	c.t.Helper()
	code, out, errOut := c.run(sub, args...)
	require.Equal(c.t, 0, code, "%s %v: %s", sub, args, errOut)
	return out
}

// town builds a-b(5), b-c(3), a-c(10).
func town(t *testing.T) *cli {
	c := newCLI(t)
	c.mustRun(ADD_NODE_SUBCMD, "a", "0", "0")
	c.mustRun(ADD_NODE_SUBCMD, "b", "1", "0")
	c.mustRun(ADD_NODE_SUBCMD, "c", "1", "1")
	c.mustRun(ADD_EDGE_SUBCMD, "a", "b", "Main St", "5")
	c.mustRun(ADD_EDGE_SUBCMD, "b", "c", "Quay", "3")
	c.mustRun(ADD_EDGE_SUBCMD, "a", "c", "Bypass", "10")
	return c
}

func TestEditingPersists(t *testing.T) {
	c := town(t)

	net, blocked, err := network.LoadFile(c.file)
	require.NoError(t, err)
	assert.Equal(t, 3, net.NodeCount())
	assert.Equal(t, 3, net.ConnectionCount())
	assert.Zero(t, blocked.Len())

	out := c.mustRun(SHOW_SUBCMD)
	assert.Contains(t, out, "places (3):")
	assert.Contains(t, out, "a - b  Main St  5")
	assert.Contains(t, out, "closed (0):")
}

func TestRouteAndClosures(t *testing.T) {
	c := town(t)

	assert.Equal(t, "a -> b -> c  (8)\n", c.mustRun(ROUTE_SUBCMD, "a", "c"))

	c.mustRun(BLOCK_SUBCMD, "b", "a")
	assert.Equal(t, "a -> c  (10)\n", c.mustRun(ROUTE_SUBCMD, "a", "c"))
	assert.Contains(t, c.mustRun(FIND_EDGE_SUBCMD, "main st"), "[closed]")

	c.mustRun(BLOCK_SUBCMD, "a", "c")
	assert.Equal(t, "no open route from a to c\n", c.mustRun(ROUTE_SUBCMD, "a", "c"))
	assert.Equal(t, "a  0\n2 place(s) cut off\n", c.mustRun(REACH_SUBCMD, "a"))

	c.mustRun(UNBLOCK_SUBCMD, "a", "b")
	c.mustRun(UNBLOCK_SUBCMD, "c", "a")
	assert.Equal(t, "a  0\nb  1\nc  1\n", c.mustRun(REACH_SUBCMD, "a"))
}

func TestAlternativesCommand(t *testing.T) {
	c := town(t)

	out := c.mustRun(ALTERNATIVES_SUBCMD, "a", "c")
	assert.Equal(t, "1. a -> b -> c  (8)\n2. a -> c  (10)\n", out)

	out = c.mustRun(ALTERNATIVES_SUBCMD, "-limit", "1", "a", "c")
	assert.Equal(t, "1. a -> b -> c  (8)\n", out)
}

func TestAddEdgeRejections(t *testing.T) {
	c := town(t)

	for name, args := range map[string][]string{
		"self loop":     {"a", "a", "Loop", "1"},
		"empty label":   {"a", "b", " ", "1"},
		"negative":      {"a", "b", "Hill", "-2"},
		"not a number":  {"a", "b", "Hill", "far"},
		"unknown place": {"a", "zz", "Nowhere", "1"},
	} {
		code, _, _ := c.run(ADD_EDGE_SUBCMD, args...)
		assert.NotZero(t, code, name)
	}

	net, _, err := network.LoadFile(c.file)
	require.NoError(t, err)
	assert.Equal(t, 3, net.ConnectionCount(), "rejected edits are not saved")
}

func TestUpdateAndRemoveEdge(t *testing.T) {
	c := town(t)

	c.mustRun(UPDATE_EDGE_SUBCMD, "c", "b", "Harbour Rd", "1")
	assert.Equal(t, "b - c  Harbour Rd  1\n", c.mustRun(FIND_EDGE_SUBCMD, "HARBOUR RD"))
	assert.Equal(t, "b - c  Harbour Rd  1\n", c.mustRun(FIND_EDGE_SUBCMD, "c-b"))

	c.mustRun(BLOCK_SUBCMD, "b", "c")
	c.mustRun(REMOVE_EDGE_SUBCMD, "b", "c")
	code, _, errOut := c.run(FIND_EDGE_SUBCMD, "b-c")
	assert.Equal(t, ERROR_STATUS_CODE, code)
	assert.Contains(t, errOut, "no road matches")

	_, blocked, err := network.LoadFile(c.file)
	require.NoError(t, err)
	assert.Zero(t, blocked.Len(), "removing a road drops its closure")

	code, _, _ = c.run(REMOVE_EDGE_SUBCMD, "b", "c")
	assert.Equal(t, ERROR_STATUS_CODE, code)
}

func TestFindEdgePrefersEnds(t *testing.T) {
	c := town(t)
	// a road whose name looks like a pair of other places
	c.mustRun(ADD_EDGE_SUBCMD, "a", "c", "b-c", "12")

	assert.Equal(t, "b - c  Quay  3\n", c.mustRun(FIND_EDGE_SUBCMD, "b-c"))
	assert.Equal(t, "a - c  Bypass  10\n", c.mustRun(FIND_EDGE_SUBCMD, "bypass"))
}

func TestUnblockAll(t *testing.T) {
	c := town(t)

	assert.Equal(t, "no roads are closed\n", c.mustRun(UNBLOCK_ALL_SUBCMD))

	c.mustRun(BLOCK_SUBCMD, "a", "b")
	c.mustRun(BLOCK_SUBCMD, "c", "b")
	assert.Equal(t, "a -> c  (10)\n", c.mustRun(ROUTE_SUBCMD, "a", "c"))

	assert.Equal(t, "reopened 2 road(s)\n", c.mustRun(UNBLOCK_ALL_SUBCMD))
	assert.Equal(t, "a -> b -> c  (8)\n", c.mustRun(ROUTE_SUBCMD, "a", "c"))

	_, blocked, err := network.LoadFile(c.file)
	require.NoError(t, err)
	assert.Zero(t, blocked.Len())
}

func TestFindNode(t *testing.T) {
	c := town(t)
	c.mustRun(BLOCK_SUBCMD, "a", "c")

	assert.Equal(t, strings.Join([]string{
		"b  (1, 0)  2 road end(s)",
		"  b - a  Main St  5",
		"  b - c  Quay  3",
		"",
	}, "\n"), c.mustRun(FIND_NODE_SUBCMD, "b"))
	assert.Contains(t, c.mustRun(FIND_NODE_SUBCMD, "a"), "a - c  Bypass  10  [closed]")

	code, _, errOut := c.run(FIND_NODE_SUBCMD, "zz")
	assert.Equal(t, ERROR_STATUS_CODE, code)
	assert.Contains(t, errOut, `no place "zz"`)
}

func TestUsageErrors(t *testing.T) {
	c := newCLI(t)

	code, _, errOut := c.run("teleport")
	assert.Equal(t, USAGE_STATUS_CODE, code)
	assert.Contains(t, errOut, "unknown command 'teleport'")

	code, _, _ = c.run(ROUTE_SUBCMD, "a")
	assert.Equal(t, USAGE_STATUS_CODE, code)

	code, _, errOut = c.run(ROUTE_SUBCMD, "a", "b")
	assert.Equal(t, ERROR_STATUS_CODE, code, "queries need an existing file")
	assert.Contains(t, errOut, "i/o failure")

	var out bytes.Buffer
	assert.Zero(t, _main([]string{COMMAND_NAME, "help"}, &out, &out))
	for _, cmd := range COMMANDS {
		assert.Contains(t, out.String(), cmd.name)
	}
}

func TestConfigSuppliesDefaults(t *testing.T) {
	c := town(t)
	dir := filepath.Dir(c.file)
	configFile := filepath.Join(dir, "roadnet.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(strings.Join([]string{
		"network: " + c.file,
		"alternatives:",
		"  limit: 1",
		"log:",
		"  level: error",
		"  format: json",
	}, "\n")), 0o644))

	var out, errOut bytes.Buffer
	code := _main([]string{COMMAND_NAME, ALTERNATIVES_SUBCMD, "-config", configFile, "a", "c"}, &out, &errOut)
	require.Zero(t, code, errOut.String())
	assert.Equal(t, "1. a -> b -> c  (8)\n", out.String())
}
