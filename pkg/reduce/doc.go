// Package reduce converts between casting and graph-coloring instances.
//
// [ToColoring] projects a casting instance onto its conflict graph: roles
// become vertices, co-occurring roles become edges, and the actor universe
// becomes the palette.
//
// [ToCasting] goes the other way with a gadget. Three base roles are pinned
// to three base actors by two base scenes, every touched vertex becomes a
// role playable by the color actors, and every edge becomes a two-role
// scene. The constructed instance has a valid assignment if and only if the
// graph, restricted to the touched vertices, is colorable.
//
//	g, _ := coloring.New(3, []coloring.Edge{{0, 1}, {1, 2}}, 2)
//	red := reduce.ToCasting(g)
//	sols := casting.Solve(red.Instance)
//	colors := reduce.ColoringFromCasting(sols[0], red.VertexRoles, g.Vertices)
package reduce
