package xcm

import (
	"fmt"
	"strings"

	"github.com/iov-one/xregister"
)

// Junction is a single step into the interior of a location. Only
// parachain junctions are supported.
type Junction struct {
	Parachain xregister.ChainID
}

// Location addresses a chain relative to the chain that uses it.
type Location struct {
	// Parents is the number of levels to go up in the topology.
	Parents uint8
	// Interior lists the junctions to follow down from there.
	Interior []Junction
}

// Parent returns the location of the relay chain as seen from a parachain.
func Parent() Location {
	return Location{Parents: 1}
}

// Sibling returns the location of a parachain as seen from another
// parachain of the same relay chain.
func Sibling(id xregister.ChainID) Location {
	return Location{Parents: 1, Interior: []Junction{{Parachain: id}}}
}

// SiblingChain returns the id of the parachain if the location points to a
// sibling.
func (l Location) SiblingChain() (xregister.ChainID, bool) {
	if l.Parents != 1 || len(l.Interior) != 1 {
		return 0, false
	}
	return l.Interior[0].Parachain, true
}

// IsParent returns true if the location points to the relay chain.
func (l Location) IsParent() bool {
	return l.Parents == 1 && len(l.Interior) == 0
}

// Equals compares two locations.
func (l Location) Equals(o Location) bool {
	if l.Parents != o.Parents || len(l.Interior) != len(o.Interior) {
		return false
	}
	for i := range l.Interior {
		if l.Interior[i] != o.Interior[i] {
			return false
		}
	}
	return true
}

func (l Location) String() string {
	parts := make([]string, 0, int(l.Parents)+len(l.Interior))
	for i := 0; i < int(l.Parents); i++ {
		parts = append(parts, "..")
	}
	for _, j := range l.Interior {
		parts = append(parts, fmt.Sprintf("parachain(%d)", j.Parachain))
	}
	if len(parts) == 0 {
		return "here"
	}
	return strings.Join(parts, "/")
}
