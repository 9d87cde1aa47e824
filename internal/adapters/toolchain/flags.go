package toolchain

import "go.trai.ch/compdb/internal/core/domain"

// namedFeatures maps feature names to the flags they inject. Iterated
// via featureOrder to keep the emitted command lines deterministic.
var namedFeatures = map[string][]string{
	"pic":  {"-fPIC"},
	"asan": {"-fsanitize=address"},
	"tsan": {"-fsanitize=thread"},
}

var featureOrder = []string{"pic", "asan", "tsan"}

// ContextFlags materializes gcc-style flags from a compilation context:
// quote includes, system includes, framework directories, and defines,
// in that order.
func (tc *Toolchain) ContextFlags(cc *domain.CompilationContext) []string {
	n := 2*(len(cc.QuoteIncludes)+len(cc.SystemIncludes)) +
		len(cc.FrameworkIncludes) + len(cc.Defines)
	flags := make([]string, 0, n)

	for _, dir := range cc.QuoteIncludes {
		flags = append(flags, "-iquote", dir)
	}
	for _, dir := range cc.SystemIncludes {
		flags = append(flags, "-isystem", dir)
	}
	for _, dir := range cc.FrameworkIncludes {
		flags = append(flags, "-F"+dir)
	}
	for _, d := range cc.Defines {
		flags = append(flags, "-D"+d.String())
	}
	return flags
}

// FeatureFlags returns the flags injected by enabled named features.
// The action parameter is part of the oracle contract; the built-in
// features apply to both compile kinds.
func (tc *Toolchain) FeatureFlags(_ domain.ActionKind) []string {
	var flags []string
	for _, name := range featureOrder {
		if tc.features[name] {
			flags = append(flags, namedFeatures[name]...)
		}
	}
	return flags
}
