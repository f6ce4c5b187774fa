// Package geometry provides the grid coordinate system shared by every
// other arena package: coordinates, the 8-direction compass table,
// Chebyshev distance, and the connected-component check the map
// generator relies on.
package geometry
