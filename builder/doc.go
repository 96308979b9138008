// Package builder provides deterministic fixture constructors for
// core.Graph: Cycle, Path, Complete and Star, plus the functional-options
// machinery (BuilderOption/builderConfig) that lets callers customize vertex
// ID schemes. It mirrors the ambient/domain stack's functional-options and
// sentinel-error conventions (core.GraphOption, scheme.Option) so that test
// fixtures and example graphs are built the same way production code
// configures a Graph or a ContractionScheme.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves
//     cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order => identical
//     graphs.
//   - Safety: never panic at runtime; constructors return sentinel errors.
package builder
