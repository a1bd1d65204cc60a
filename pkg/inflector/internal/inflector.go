package internal

// Defaults is the rule registry the public API dispatches on.
var Defaults = &Inflector{}

type Inflector struct {
	rules map[RuleType]*Rule
}

func (i *Inflector) MustRegister(r *Rule) {
	if err := i.Register(r); err != nil {
		panic(err)
	}
}

func (i *Inflector) Register(r *Rule) error {
	if err := r.Init(); err != nil {
		return err
	}

	if i.rules == nil {
		i.rules = make(map[RuleType]*Rule)
	}
	i.rules[r.Type] = r

	return nil
}

// Inflected applies the registered rule set of the given kind to s.
// Words of an unregistered kind pass through unchanged.
func (i *Inflector) Inflected(kind RuleType, s string) string {
	r, ok := i.rules[kind]
	if !ok {
		return s
	}
	return r.Inflected(s)
}
