package builder

// Constructor minimums.
const (
	// MinPathNodes: a path needs one edge.
	MinPathNodes = 2
	// MinCycleNodes: fewer nodes would need a loop or a parallel edge.
	MinCycleNodes = 3
	// MinStarNodes: a hub plus one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a rim cycle of three plus the hub.
	MinWheelNodes = 4
	// MinCompleteNodes: K_1 is a valid, edgeless graph.
	MinCompleteNodes = 1
	// MinGridDim applies to rows and cols separately.
	MinGridDim = 1
	// MinRandomNodes: one node is a valid, edgeless graph.
	MinRandomNodes = 1
	// MinPartitionSize applies to each side of a bipartite graph.
	MinPartitionSize = 1
)

// Canonical constructor names used as error prefixes.
const (
	methodPath            = "Path"
	methodCycle           = "Cycle"
	methodStar            = "Star"
	methodWheel           = "Wheel"
	methodComplete        = "Complete"
	methodGrid            = "Grid"
	methodRandomConnected = "RandomConnected"

	methodCompleteBipartite = "CompleteBipartite"
	methodRegion            = "Region"
)
