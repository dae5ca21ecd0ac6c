package registry

import "context"

// ContributorType classifies a contributor's relationship to a work.
type ContributorType string

const (
	// ContributorWriter covers authors and composers.
	ContributorWriter ContributorType = "writer"
	// ContributorPublisher covers rights-administration entities.
	ContributorPublisher ContributorType = "publisher"
)

// Contributor is a person or organization associated with a composition.
// Share, IPI, and PRO are frequently absent from registry payloads; absent
// values stay absent rather than defaulting.
type Contributor struct {
	Name string
	Type ContributorType
	// Role is the specific role label where the registry reports one,
	// e.g. "Composer/Author" or "Original Publisher".
	Role string
	// SharePercent is the ownership share in percent, nil when unknown.
	SharePercent *float64
	// IPI is the interested-party identifier, empty when unknown.
	IPI string
	// PRO is the performing-rights-organization affiliation, empty when unknown.
	PRO string
}

// Composition is a musical work candidate returned by a registry provider.
// Immutable once fetched.
type Composition struct {
	ID           string
	Title        string
	Provider     string
	ISWC         string
	Contributors []Contributor
	// Raw carries provider fields not otherwise modeled.
	Raw map[string]any
}

// Key returns the composition's global identity. Two fetches returning the
// same (provider, ID) pair collapse to one canonical work.
func (c Composition) Key() string {
	return c.Provider + "/" + c.ID
}

// Writers returns the subset of contributors classified as writers.
func (c Composition) Writers() []Contributor {
	return c.contributorsOfType(ContributorWriter)
}

// Publishers returns the subset of contributors classified as publishers.
func (c Composition) Publishers() []Contributor {
	return c.contributorsOfType(ContributorPublisher)
}

func (c Composition) contributorsOfType(kind ContributorType) []Contributor {
	var out []Contributor
	for _, contrib := range c.Contributors {
		if contrib.Type == kind {
			out = append(out, contrib)
		}
	}
	return out
}

// Provider is the capability set each registry integration implements. The
// matching pipeline is provider-agnostic and fans out identically to every
// configured provider.
//
// Lookups that find nothing return an empty slice and a nil error; errors are
// reserved for transport and protocol failures.
type Provider interface {
	Name() string
	LookupByCode(ctx context.Context, code string) ([]Composition, error)
	SearchByTitle(ctx context.Context, title, performerHint string) ([]Composition, error)
}
