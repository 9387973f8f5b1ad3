package templates

// DefaultID is the template used when an unknown id is requested.
const DefaultID = "classic"

var registry = map[string]Descriptor{
	"academic":   academic,
	"classic":    classic,
	"modern":     modern,
	"structured": structured,
}

// IDs lists the registered template identifiers in a fixed order.
func IDs() []string {
	return []string{"academic", "classic", "modern", "structured"}
}

// Get returns the descriptor for id and whether it exists.
func Get(id string) (Descriptor, bool) {
	d, ok := registry[id]
	return d, ok
}

// Resolve returns the descriptor for id, falling back to the classic
// template for unknown ids.
func Resolve(id string) Descriptor {
	if d, ok := registry[id]; ok {
		return d
	}
	return registry[DefaultID]
}
