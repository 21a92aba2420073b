package taxonomy

// LabelsFilter post-processes the label mapping of one taxonomy before it
// reaches the host. It must return the mapping to use; mutating the input
// in place and returning it is fine.
type LabelsFilter func(labels Labels) Labels

// ArgsFilter post-processes the assembled host arguments of one taxonomy.
type ArgsFilter func(args Args) Args

// Hooks is an explicit filter bus, keyed by taxonomy key. It replaces a
// global hook registry: the composition root owns one Hooks value and
// passes it to the registration pass.
type Hooks struct {
	labels map[string][]LabelsFilter
	args   map[string][]ArgsFilter
}

// NewHooks creates an empty filter bus.
func NewHooks() *Hooks {
	return &Hooks{
		labels: make(map[string][]LabelsFilter),
		args:   make(map[string][]ArgsFilter),
	}
}

// OnLabels registers a filter for the label mapping of the taxonomy with
// the given key. Filters run in registration order.
func (h *Hooks) OnLabels(key string, f LabelsFilter) {
	h.labels[key] = append(h.labels[key], f)
}

// OnArgs registers a filter for the host arguments of the taxonomy with
// the given key. Filters run in registration order.
func (h *Hooks) OnArgs(key string, f ArgsFilter) {
	h.args[key] = append(h.args[key], f)
}

func (h *Hooks) applyLabels(key string, labels Labels) Labels {
	if h == nil {
		return labels
	}
	for _, f := range h.labels[key] {
		labels = f(labels)
	}
	return labels
}

func (h *Hooks) applyArgs(key string, args Args) Args {
	if h == nil {
		return args
	}
	for _, f := range h.args[key] {
		args = f(args)
	}
	return args
}
