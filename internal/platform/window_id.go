package platform

import "fmt"

// String formats the identifier the way window tools print handles.
func (id WindowID) String() string {
	return fmt.Sprintf("0x%08x", uint64(id))
}
