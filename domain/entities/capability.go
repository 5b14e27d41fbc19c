package entities

// Capability represents a permission required by a contract operation.
// Capabilities follow the format "category:resource" (e.g. "digest:hash256").
// The header verifier is pure computation and declares only digest
// capabilities; there is no network, filesystem, or storage access.
type Capability struct {
	// Category is the capability category (e.g. "digest", "log").
	Category string `json:"kind"`

	// Resource is the specific resource within the category.
	Resource string `json:"pattern"`
}

// NewCapability creates a new Capability with the given category and resource.
func NewCapability(category, resource string) Capability {
	return Capability{
		Category: category,
		Resource: resource,
	}
}

// String returns the capability in "category:resource" format.
func (c Capability) String() string {
	return c.Category + ":" + c.Resource
}

// DigestCapability creates a digest capability for the named algorithm.
func DigestCapability(algorithm string) Capability {
	return NewCapability("digest", algorithm)
}
