package pve

import (
	"log/slog"
	"strings"
)

// Guest kinds the locator considers; everything else in the inventory
// (nodes, storage, pools) is skipped.
const (
	KindQemu = "qemu"
	KindLXC  = "lxc"
)

// Guest identifies one located instance in the cluster.
type Guest struct {
	Name string
	Kind string
	ID   string
	Node string
}

// Locate scans the resource inventory for the guest matching the given
// name or bare numeric id. At least one selector must be set; supplying
// neither returns ErrNoSelector.
//
// The scan does not stop at the first hit: when several entries satisfy
// the selector, the last one in inventory order wins. That matches the
// long-standing behavior of this tool; collisions are logged at debug
// level so the operator can spot them.
func Locate(resources []Resource, name, vmid string) (*Guest, error) {
	if name == "" && vmid == "" {
		return nil, ErrNoSelector
	}

	var found *Guest
	for _, item := range resources {
		if item.Type != KindQemu && item.Type != KindLXC {
			continue
		}
		// Composite ids look like "qemu/101" or "lxc/202".
		bareID := strings.TrimPrefix(item.ID, item.Type+"/")
		if !(name != "" && item.Name == name) && !(vmid != "" && bareID == vmid) {
			continue
		}
		if found != nil {
			slog.Debug("guest selector matched more than one entry, keeping the later one",
				"previous", found.Kind+"/"+found.ID, "next", item.ID)
		}
		found = &Guest{
			Name: item.Name,
			Kind: item.Type,
			ID:   bareID,
			Node: item.Node,
		}
	}

	if found == nil {
		return nil, &NotFoundError{Name: name, VMID: vmid}
	}
	return found, nil
}
