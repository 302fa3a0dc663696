// Package driver binds a target distribution to a sampler and steps it.
//
// [Driver] owns play/pause/reset semantics and the event sink: every
// Step runs the sampler for one unit of work and folds the emitted
// events before returning, so consumers always observe a coherent
// snapshot between steps. [Registry] maps algorithm and target keys to
// constructors, keeping the rest of the system algorithm-agnostic.
package driver
