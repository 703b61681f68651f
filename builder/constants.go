// SPDX-License-Identifier: MIT

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomRegular is the canonical name for the RandomRegular constructor.
	MethodRandomRegular = "RandomRegular"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
	// MethodTriangulation is the canonical name for the Triangulation constructor.
	MethodTriangulation = "Triangulation"
	// MethodConnect is the canonical name for the Connect edit.
	MethodConnect = "Connect"
	// MethodSubdivideEdge is the canonical name for the SubdivideEdge edit.
	MethodSubdivideEdge = "SubdivideEdge"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star (center + one leaf).
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel (C3 + hub).
const MinWheelNodes = 4

// MinCompleteNodes is the smallest size for K_n.
const MinCompleteNodes = 1

// MinPartition is the smallest side of K_{n1,n2}.
const MinPartition = 1

// MinGridDim is the smallest allowed grid dimension; 1×1 has no edges but is valid.
const MinGridDim = 1

// MinTriangulationNodes is the smallest stacked triangulation (a triangle).
const MinTriangulationNodes = 3

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for RandomSparse(p).
const MinProbability = 0.0

// MaxProbability is the upper bound for RandomSparse(p).
const MaxProbability = 1.0
