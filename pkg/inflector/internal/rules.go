package internal

// Regular English plural inflection, suffix rules only.
// Rule order matters: "ss" must hit the sibilant rule before the default,
// and "oy"/"ay"/"ey" endings must skip the "ies" rewrite.
func init() {
	Defaults.MustRegister(&Rule{
		Type: Plural,
		Rules: []*RuleItem{
			{`(?i)(s|sh|ch)$`, `${1}es`},
			{`(?i)(o)$`, `${1}es`},
			{`(?i)([^aeio])y$`, `${1}ies`},
		},
		Fallback: "s",
	})
}
