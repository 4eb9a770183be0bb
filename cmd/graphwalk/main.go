// SPDX-License-Identifier: MIT

// Command graphwalk loads a small graph description and prints its
// depth-first order, breadth-first depths and connected components.
//
// Usage:
//
//	graphwalk -f graph.yaml [-start name] [-dir outgoing|incoming|undirected] [-o snapshot.json] [-v]
//
// The description is JSON or YAML, picked by file extension:
//
//	nodes: [a, b, c]
//	edges:
//	  - {from: a, to: b}
//	  - {from: b, to: c}
//	start: a
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/henke443/fast-graph/bfs"
	"github.com/henke443/fast-graph/codec"
	"github.com/henke443/fast-graph/core"
	"github.com/henke443/fast-graph/dfs"
)

var (
	errNoInput      = errors.New("graphwalk: -f is required")
	errDuplicate    = errors.New("graphwalk: duplicate node name")
	errUnknownNode  = errors.New("graphwalk: unknown node")
	errBadDirection = errors.New("graphwalk: bad direction")
)

type document struct {
	Nodes []string  `json:"nodes" yaml:"nodes"`
	Edges []edgeDoc `json:"edges" yaml:"edges"`
	Start string    `json:"start" yaml:"start"`
}

type edgeDoc struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

type walkGraph = core.Graph[string, struct{}]

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("graphwalk", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("f", "", "graph description (.json, .yaml, .yml)")
	start := fs.String("start", "", "start node; overrides the description")
	dirName := fs.String("dir", "outgoing", "edge direction: outgoing, incoming or undirected")
	out := fs.String("o", "", "write a snapshot of the loaded graph")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return errNoInput
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = stderr
		w.NoColor = true
		w.PartsExclude = []string{zerolog.TimestampFieldName}
	})).Level(level)

	dir, err := parseDirection(*dirName)
	if err != nil {
		return err
	}

	doc, err := load(*path)
	if err != nil {
		return err
	}
	if *start != "" {
		doc.Start = *start
	}

	g, names, err := build(doc, core.WithLogger(log))
	if err != nil {
		return err
	}
	log.Debug().Str("file", *path).Int("nodes", g.NodeCount()).Int("edges", g.EdgeCount()).Msg("graph loaded")

	if *out != "" {
		if err := writeSnapshot(*out, g); err != nil {
			return err
		}
		log.Info().Str("file", *out).Msg("snapshot written")
	}

	if doc.Start == "" && len(doc.Nodes) > 0 {
		doc.Start = doc.Nodes[0]
	}
	if doc.Start != "" {
		id, ok := names[doc.Start]
		if !ok {
			return fmt.Errorf("%w: start %q", errUnknownNode, doc.Start)
		}
		if err := report(stdout, g, id, dir); err != nil {
			return err
		}
	}

	comps, err := dfs.ConnectedComponents(g)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "components: %d\n", len(comps))
	for _, c := range comps {
		fmt.Fprintf(stdout, "  %s\n", labels(g, c.Sorted()))
	}

	return nil
}

func parseDirection(s string) (core.Direction, error) {
	switch strings.ToLower(s) {
	case "outgoing", "out":
		return core.Outgoing, nil
	case "incoming", "in":
		return core.Incoming, nil
	case "undirected", "both":
		return core.Undirected, nil
	}

	return 0, fmt.Errorf("%w: %q", errBadDirection, s)
}

func load(path string) (document, error) {
	var doc document
	f, err := codec.FormatOf(path)
	if err != nil {
		return doc, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("graphwalk: %w", err)
	}
	if err := codec.Unmarshal(data, f, &doc); err != nil {
		return doc, err
	}

	return doc, nil
}

// build adds the named nodes in order, then the edges between them.
func build(doc document, opts ...core.Option) (*walkGraph, map[string]core.NodeID, error) {
	g := core.New[string, struct{}](opts...)
	names := make(map[string]core.NodeID, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if _, ok := names[n]; ok {
			return nil, nil, fmt.Errorf("%w: %q", errDuplicate, n)
		}
		names[n] = g.AddNode(n)
	}

	pairs := make([]core.EdgePair, 0, len(doc.Edges))
	for _, e := range doc.Edges {
		from, ok := names[e.From]
		if !ok {
			return nil, nil, fmt.Errorf("%w: edge from %q", errUnknownNode, e.From)
		}
		to, ok := names[e.To]
		if !ok {
			return nil, nil, fmt.Errorf("%w: edge to %q", errUnknownNode, e.To)
		}
		pairs = append(pairs, core.EdgePair{From: from, To: to})
	}
	g.AddEdges(pairs)

	return g, names, nil
}

func writeSnapshot(path string, g *walkGraph) error {
	f, err := codec.FormatOf(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphwalk: %w", err)
	}
	if err := codec.Encode(file, f, g); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

func report(w io.Writer, g *walkGraph, start core.NodeID, dir core.Direction) error {
	d := dfs.New(g, start, dfs.WithDirection(dir))
	var order []core.NodeID
	for id := range d.All() {
		order = append(order, id)
	}
	if err := d.Err(); err != nil {
		return err
	}
	fmt.Fprintf(w, "dfs: %s\n", labels(g, order))
	fmt.Fprintf(w, "cyclic: %t\n", d.Cyclic())

	b := bfs.New(g, start, bfs.WithDirection(dir))
	var levels []string
	for id := range b.All() {
		depth, _ := b.Depth(id)
		levels = append(levels, fmt.Sprintf("%s:%d", label(g, id), depth))
	}
	if err := b.Err(); err != nil {
		return err
	}
	fmt.Fprintf(w, "bfs: %s\n", strings.Join(levels, " "))

	return nil
}

func label(g *walkGraph, id core.NodeID) string {
	n, err := g.Node(id)
	if err != nil {
		return id.String()
	}

	return n.Data
}

func labels(g *walkGraph, ids []core.NodeID) string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = label(g, id)
	}

	return strings.Join(out, " ")
}
