package builder

// Method name constants, used to prefix wrapped errors with the
// constructor name for context.
const (
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodComplete = "Complete"
)

// CenterVertexID is the identifier for the hub vertex in Star topologies.
const CenterVertexID = "Center"

// Minimum node counts per topology.
const (
	// MinCycleNodes is the smallest meaningful size for a cycle: fewer than
	// 3 nodes cannot form a ring without loops or parallel edges.
	MinCycleNodes = 3

	// MinPathNodes is the smallest meaningful size for a simple path.
	MinPathNodes = 2

	// MinStarNodes is the smallest meaningful size for a star: one center
	// plus at least one leaf.
	MinStarNodes = 2

	// MinCompleteNodes is the smallest meaningful size for K_n.
	MinCompleteNodes = 1
)
