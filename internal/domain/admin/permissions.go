package admin

import "sort"

// Permission names one protected back-office operation.
type Permission string

const (
	PermInquiriesRead   Permission = "inquiries:read"
	PermInquiriesUpdate Permission = "inquiries:update"
	PermCampaignsRead   Permission = "campaigns:read"
	PermCampaignsWrite  Permission = "campaigns:write"
	PermAdminsManage    Permission = "admins:manage"
)

var knownPermissions = map[Permission]bool{
	PermInquiriesRead:   true,
	PermInquiriesUpdate: true,
	PermCampaignsRead:   true,
	PermCampaignsWrite:  true,
	PermAdminsManage:    true,
}

var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermInquiriesRead,
		PermInquiriesUpdate,
		PermCampaignsRead,
		PermCampaignsWrite,
	},
	RoleSuperAdmin: {
		PermInquiriesRead,
		PermInquiriesUpdate,
		PermCampaignsRead,
		PermCampaignsWrite,
		PermAdminsManage,
	},
}

type PermissionSet map[Permission]struct{}

// RolePermissions returns the default capabilities of a role. Unknown roles
// get an empty set.
func RolePermissions(role Role) PermissionSet {
	set := PermissionSet{}
	for _, p := range rolePermissions[role] {
		set[p] = struct{}{}
	}
	return set
}

// With returns a copy of s extended by the known permissions in extra.
func (s PermissionSet) With(extra ...string) PermissionSet {
	out := make(PermissionSet, len(s)+len(extra))
	for p := range s {
		out[p] = struct{}{}
	}
	for _, name := range extra {
		if p := Permission(name); knownPermissions[p] {
			out[p] = struct{}{}
		}
	}
	return out
}

func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// Strings returns the set sorted, suitable for a token claim.
func (s PermissionSet) Strings() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, string(p))
	}
	sort.Strings(out)
	return out
}
