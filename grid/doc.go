// Package grid converts between ASCII puzzle grids and the sparse coordinate
// collections of package coord, and finds connected regions in them.
//
// What:
//
//   - Parsers: MapChars, MapDigits, FindSet and ParseCoordinates ingest a
//     slice of lines. Coordinates are 1-indexed: the first rune of the first
//     line is coord.At(1, 1). Columns count runes, not bytes.
//   - Printers: PrintSet, PrintSets, PrintMap, PrintChars and PrintDigits
//     render a sparse collection over an inclusive Bounds, one line per row,
//     each terminated by '\n'.
//   - Regions: flood-fill connected components of a coordinate set with
//     4- or 8-way connectivity.
//
// Why:
//
//   - Puzzles grow and shrink their world freely; sparse maps avoid
//     reallocating a dense buffer, and rendering happens lazily over
//     whatever box the caller asks for.
//   - PrintSets overlays two sets so debug dumps can distinguish, for
//     example, live cells from cells about to be removed.
//
// Errors:
//
//   - Parsers are permissive: empty or ragged input yields smaller (possibly
//     empty) collections, never an error. ParseCoordinates is the exception
//     and returns ErrBadCoordinate for malformed lines.
//   - Printers never fail; an empty Bounds renders "".
//
// Complexity:
//
//   - Parse: O(total runes). Print: O(rows × cols). Regions: O(n·d), d = 4 or 8.
package grid
