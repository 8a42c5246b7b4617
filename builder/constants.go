package builder

// Method names used to prefix constructor errors.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodWheel        = "Wheel"
	MethodGrid         = "Grid"
	MethodComplete     = "Complete"
	MethodRandomSparse = "RandomSparse"
)

// Minimum sizes per topology.
const (
	MinPathNodes     = 2 // fewer nodes have no edge
	MinCycleNodes    = 3 // a ring needs three distinct vertices
	MinStarNodes     = 2 // center plus one leaf
	MinWheelNodes    = 4 // ring of 3 plus hub
	MinGridDim       = 1 // 1×1 is a lone vertex
	MinCompleteNodes = 1
	MinRandomNodes   = 1
)
