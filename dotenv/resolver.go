package dotenv

// LookupEnv retrieves the value of an environment variable and reports
// whether it is set. It has the signature of [os.LookupEnv].
type LookupEnv func(name string) (string, bool)

// Vars holds the keys parsed so far from one document.
// A nil value marks a key that was declared without a value.
type Vars map[string]*string

// Set records a key with a value.
func (v Vars) Set(key, value string) { v[key] = &value }

// Declare records a key without a value.
func (v Vars) Declare(key string) { v[key] = nil }

// Resolver expands substitution names for a single document.
type Resolver struct {
	env  LookupEnv
	vars Vars
}

// NewResolver returns a Resolver that consults env before vars.
// A nil env disables environment lookups.
func NewResolver(env LookupEnv, vars Vars) *Resolver {
	if env == nil {
		env = func(string) (string, bool) { return "", false }
	}

	return &Resolver{env: env, vars: vars}
}

// Resolve returns the environment value of name if it is set, otherwise the
// value recorded for name earlier in the document, otherwise "".
func (r *Resolver) Resolve(name string) string {
	if v, ok := r.env(name); ok {
		return v
	}

	if v := r.vars[name]; v != nil {
		return *v
	}

	return ""
}
