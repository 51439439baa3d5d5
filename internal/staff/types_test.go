package staff

import "testing"

func TestPermissionSet_Has(t *testing.T) {
	set := PermissionSet{CanViewLeads: true, CanManageTeam: true}

	if !set.Has(PermViewLeads) {
		t.Error("granted permission not reported")
	}
	if set.Has(PermManageBookings) {
		t.Error("ungranted permission reported")
	}
	if set.Has(Permission("canDoAnything")) {
		t.Error("unknown permission reported")
	}
}

func TestPermissionSet_HasAny(t *testing.T) {
	set := PermissionSet{CanViewLeads: true}

	if !set.HasAny([]Permission{PermViewBookings, PermViewLeads}) {
		t.Error("one granted permission should satisfy the set")
	}
	if set.HasAny([]Permission{PermViewBookings}) {
		t.Error("no granted permission should not satisfy the set")
	}
	if set.HasAny(nil) {
		t.Error("empty requirement should not satisfy")
	}
}
