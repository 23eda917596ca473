package style

import "os"

// Environment abstracts access to environment variables, so that the
// fidelity heuristics remain testable without mutating the process
// environment.
type Environment interface {
	// Lookup retrieves the value of the environment variable and
	// reports whether the variable is defined at all.
	Lookup(name string) (string, bool)
}

// OSEnvironment reads the process environment.
type OSEnvironment struct{}

func (OSEnvironment) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// FakeEnvironment is an in-memory environment for tests.
type FakeEnvironment map[string]string

func (e FakeEnvironment) Lookup(name string) (string, bool) {
	value, ok := e[name]
	return value, ok
}

func isDefined(env Environment, name string) bool {
	_, ok := env.Lookup(name)
	return ok
}

func isNonEmpty(env Environment, name string) bool {
	value, ok := env.Lookup(name)
	return ok && value != ""
}

func hasValue(env Environment, name, expected string) bool {
	value, ok := env.Lookup(name)
	return ok && value == expected
}
