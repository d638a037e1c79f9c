package output

import "strings"

// Casing selects how emitted keys are cased.
type Casing string

const (
	CasingInsensitive Casing = "insensitive" // keys unchanged
	CasingLower       Casing = "lower"
	CasingUpper       Casing = "upper"
)

// DefaultCasing leaves keys unchanged.
const DefaultCasing = CasingInsensitive

// Casings returns the names of every Casing.
func Casings() []string {
	return []string{
		string(CasingInsensitive),
		string(CasingLower),
		string(CasingUpper),
	}
}

// Apply returns key cased according to c.
func (c Casing) Apply(key string) string {
	switch c {
	case CasingLower:
		return strings.ToLower(key)
	case CasingUpper:
		return strings.ToUpper(key)
	default:
		return key
	}
}
