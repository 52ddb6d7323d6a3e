package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"walk_router/pkg/campus"
	"walk_router/pkg/routing"
)

const defaultMapFile = "map.osm"

type options struct {
	mapFile string
	dump    bool
}

// num formats like a stream with eight significant digits.
func num(x float64) string {
	return fmt.Sprintf("%.8g", x)
}

// run drives the interactive prompt: load a map, then navigate between
// buildings until the user enters "#" or input ends.
func run(ctx context.Context, in io.Reader, out io.Writer, opts options) error {
	w := bufio.NewWriter(out)
	defer w.Flush()
	sc := bufio.NewScanner(in)

	readLine := func(prompt string) (string, bool) {
		fmt.Fprint(w, prompt)
		w.Flush()
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimRight(sc.Text(), "\r"), true
	}

	fmt.Fprintln(w, "** Navigating UIC open street map **")
	fmt.Fprintln(w)

	filename := opts.mapFile
	if filename == "" {
		filename, _ = readLine("Enter map filename> ")
		if filename == "" {
			filename = defaultMapFile
		}
	}

	c, err := campus.Load(ctx, filename, campus.Options{})
	if err != nil {
		fmt.Fprintln(w, "**Error: unable to load open street map.")
		fmt.Fprintln(w)
		return nil
	}

	stats := c.Stats()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "# of nodes: %d\n", stats.Nodes)
	fmt.Fprintf(w, "# of footways: %d\n", stats.Footways)
	fmt.Fprintf(w, "# of buildings: %d\n", stats.Buildings)
	fmt.Fprintf(w, "# of vertices: %d\n", stats.Vertices)
	fmt.Fprintf(w, "# of edges: %d\n", stats.Edges)
	fmt.Fprintln(w)

	if opts.dump {
		if err := c.Graph.Dump(w); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	for {
		startQuery, ok := readLine("Enter start (partial name or abbreviation), or #> ")
		if !ok || startQuery == "#" {
			break
		}
		destQuery, ok := readLine("Enter destination (partial name or abbreviation)> ")
		if !ok {
			break
		}

		if err := navigate(ctx, w, c.Engine, startQuery, destQuery); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "** Done **")
	return sc.Err()
}

// navigate answers one start/destination pair. Lookup failures and
// unreachable destinations are reported to the user, not returned.
func navigate(ctx context.Context, w io.Writer, eng *routing.Engine, startQuery, destQuery string) error {
	p, err := eng.Plan(startQuery, destQuery)
	switch {
	case errors.Is(err, routing.ErrStartNotFound):
		fmt.Fprintln(w, "Start building not found")
		return nil
	case errors.Is(err, routing.ErrDestinationNotFound):
		fmt.Fprintln(w, "Destination building not found")
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintln(w, "Starting point:")
	fmt.Fprintf(w, " %s\n", p.Start.Fullname)
	fmt.Fprintf(w, " (%s, %s)\n", num(p.Start.Lat), num(p.Start.Lon))
	fmt.Fprintln(w, "Destination point:")
	fmt.Fprintf(w, " %s\n", p.Destination.Fullname)
	fmt.Fprintf(w, " (%s, %s)\n", num(p.Destination.Lat), num(p.Destination.Lon))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Nearest start node:")
	fmt.Fprintf(w, " %d\n", p.StartNode.ID)
	fmt.Fprintf(w, " (%s, %s)\n", num(p.StartNode.Lat), num(p.StartNode.Lon))
	fmt.Fprintln(w, "Nearest destination node:")
	fmt.Fprintf(w, " %d\n", p.DestNode.ID)
	fmt.Fprintf(w, " (%s, %s)\n", num(p.DestNode.Lat), num(p.DestNode.Lon))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Navigating with Dijkstra...")

	res, err := eng.Navigate(ctx, p)
	if errors.Is(err, routing.ErrNoRoute) {
		fmt.Fprintln(w, "Sorry, destination unreachable")
		fmt.Fprintln(w)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Distance to dest: %s miles\n", num(res.TotalDistanceMiles))
	hops := make([]string, len(res.Path))
	for i, id := range res.Path {
		hops[i] = fmt.Sprint(id)
	}
	fmt.Fprintf(w, "Path: %s\n", strings.Join(hops, "->"))
	fmt.Fprintln(w)

	return nil
}
