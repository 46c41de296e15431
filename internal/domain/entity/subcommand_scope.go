package entity

import "slices"

// ScopeKind discriminates SubcommandScope variants.
type ScopeKind int

const (
	// ScopeAll applies to every subcommand. It is the zero value.
	ScopeAll ScopeKind = iota
	// ScopeSingle applies to exactly one named subcommand.
	ScopeSingle
	// ScopeList applies to an explicit list of subcommands.
	ScopeList
)

// SubcommandScope is the set of subcommands where an entry applies.
type SubcommandScope struct {
	kind  ScopeKind
	names []string
}

// AllSubcommands returns the scope covering every subcommand.
func AllSubcommands() SubcommandScope {
	return SubcommandScope{kind: ScopeAll}
}

// OnlySubcommand returns a scope naming a single subcommand.
func OnlySubcommand(name string) SubcommandScope {
	return SubcommandScope{kind: ScopeSingle, names: []string{name}}
}

// SubcommandList returns a scope naming an explicit list of subcommands.
func SubcommandList(names ...string) SubcommandScope {
	return SubcommandScope{kind: ScopeList, names: slices.Clone(names)}
}

// Kind returns the variant of the scope.
func (s SubcommandScope) Kind() ScopeKind {
	return s.kind
}

// Expand returns the concrete subcommand names of the scope as a fresh slice.
func (s SubcommandScope) Expand(all []string) []string {
	if s.kind == ScopeAll {
		return append([]string{}, all...)
	}
	return append([]string{}, s.names...)
}
