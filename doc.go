// Package bocafinder is an interactive planar-graph workbench: draw vertices
// and edges on a canvas, freeze the drawing, then pick an anchor and one or
// more targets and ask for the geometrically closest target.
//
// What is inside?
//
//	core            GraphStore: positioned vertices, undirected edges,
//	                R-tree hit-testing, freeze switch
//	adjacency       frozen neighbour lists with Euclidean edge weights
//	bfs             hop-count traversal and the reachability pass
//	dijkstra        combined-cost shortest path, alpha·distance + (1−alpha)·hops
//	selector        multi-target selection by true route length
//	session         the click-driven Drawing → Selecting state machine
//	builder         deterministic layouts (path, cycle, star, wheel, grid, …)
//	render          PNG snapshots and GeoJSON export of a session view
//	script          TOML click scripts replayed against a session
//	config          TOML configuration (alpha, hit radius, canvas, buttons)
//	server          HTTP surface driving one session
//	cmd/bocafinder  the CLI: replay, demo, serve, config
//
// Quick start:
//
//	s, _ := session.New()
//	s.Click(orb.Point{100, 100})         // vertex 0
//	s.Click(orb.Point{200, 100})         // vertex 1
//	s.Click(orb.Point{100, 100})         // pending 0
//	s.Click(orb.Point{200, 100})         // edge {0,1}
//	s.PressSubmit()
//	s.Click(orb.Point{100, 100})         // anchor 0
//	s.Click(orb.Point{200, 100})         // target 1
//	res, _ := s.PressFindDistance()      // res.Path == [0 1], res.Length == 100
//
// The cost blend is documented in dijkstra; selection across targets always
// compares Euclidean route length, never the blended cost.
package bocafinder
