// Package physics holds the simulation update hook. It carries no model:
// there is no particle state, integration or interaction to advance.
package physics

// Engine is the per-frame physics hook.
type Engine struct{}

func New() *Engine { return &Engine{} }

// Update is called once per frame and does nothing.
func (e *Engine) Update() {}
