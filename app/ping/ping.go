// Package ping defines the probe naming convention shared by the ping client and server.
//
// A probe Interest is named prefix + "/ping" [+ "/" + identifier] + "/" + number,
// where number is a base-10 integer.
package ping

import (
	"strconv"

	"github.com/usnistgov/ndn-dpdk/ndn"
	"github.com/usnistgov/ndn-dpdk/ndn/an"
)

// Component is the name component that marks the ping namespace.
const Component = "ping"

// Prefix returns name + "/ping".
// The input name is not modified.
func Prefix(name ndn.Name) ndn.Name {
	comp := ndn.MakeNameComponent(an.TtGenericNameComponent, []byte(Component))
	return append(name[:len(name):len(name)], comp)
}

// Parse determines whether name is a well-formed probe under pingPrefix.
// A probe name has exactly one component after pingPrefix, and that component
// fully parses as a base-10 unsigned integer. Leading zeros are accepted.
func Parse(name, pingPrefix ndn.Name) (number uint64, ok bool) {
	if len(name) != len(pingPrefix)+1 || !pingPrefix.IsPrefixOf(name) {
		return 0, false
	}
	comp := name[len(name)-1]
	if comp.Type != an.TtGenericNameComponent {
		return 0, false
	}
	number, e := strconv.ParseUint(string(comp.Value), 10, 64)
	if e != nil {
		return 0, false
	}
	return number, true
}
