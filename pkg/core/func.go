package core

// FuncComponent is a component assembled from closures. Use Func to create
// its build function for quick, self-contained projections that don't need
// a named type.
type FuncComponent[G, M any] struct {
	handle  any
	rebuild func(ctx Ctx[G, M])
}

// RenderHandle returns the handle supplied to Func.
func (c *FuncComponent[G, M]) RenderHandle() any {
	return c.handle
}

// Rebuild invokes the rebuild closure supplied to Func.
func (c *FuncComponent[G, M]) Rebuild(ctx Ctx[G, M]) {
	if c.rebuild != nil {
		c.rebuild(ctx)
	}
}

// Func adapts a rebuild closure into a component build function:
//
//	label := &ui.Label{}
//	h := core.NewComponent(tree, lensTitle, core.Func[AppState](label, func(ctx core.Ctx[AppState, string]) {
//	    ctx.WithModel(func(title *string) { label.Text = *title })
//	}), struct{}{})
//
// handle is what RenderHandle exposes; rebuild runs once at creation and
// on every flush that includes the component. For components with their
// own derived state or child handles, implement Component on a named
// struct instead.
func Func[G, M any](handle any, rebuild func(ctx Ctx[G, M])) BuildFunc[G, M, struct{}, *FuncComponent[G, M]] {
	return func(ctx Ctx[G, M], _ struct{}) *FuncComponent[G, M] {
		return &FuncComponent[G, M]{handle: handle, rebuild: rebuild}
	}
}
