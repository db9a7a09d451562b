// Package graph (transport) is an in-memory graph toolkit and, on top of
// it, an exact solver for the discrete Kantorovich optimal-transport
// problem.
//
// 🚀 What's inside?
//
//	A modern, thread-safe graph library plus a network-simplex solver:
//
//	  • Core primitives: create vertices & edges, mutate safely under locks
//	  • Matrix views: adjacency & incidence matrices + converters
//	  • Classic algorithms: BFS, DFS, Dijkstra, Prim & Kruskal
//	  • transport/: network-simplex solver for the transportation problem
//
// ✨ Why choose this toolkit?
//
//   - Beginner-friendly    — minimal API, clear, intuitive naming
//   - Rock-solid           — built-in R/W locks ensure thread-safety
//   - Extensible           — attach OnVisit/OnEnqueue hooks for custom logic
//   - Pure Go              — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	core/       — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	matrix/     — adjacency & incidence matrix representations + converters
//	algorithms/ — traversal (BFS/DFS)
//	dijkstra/   — shortest path (Dijkstra)
//	prim_kruskal/ — MST (Prim/Kruskal)
//	transport/  — network-simplex solver for the Kantorovich distance
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges.
//
// Each subpackage's doc.go and example tests hold its usage examples.
//
//	go get github.com/katalvlaran/transport/transport
package graph
