// Package authroles maps IdP group claims to application roles and HR
// instance tags for the SSO login path.
package authroles

import (
	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
)

// StaticRoleMapper maps groups by simple string membership rules.
// AdminGroup grants the admin role; HrGroups assigns the regional HR
// instance. Accounts matching neither fall back to employee on DefaultHr.
type StaticRoleMapper struct {
	AdminGroup string
	HrGroups   map[string]domainauth.HrTag
	DefaultHr  domainauth.HrTag
}

func (m StaticRoleMapper) Map(groups []string) (domainauth.Role, domainauth.HrTag) {
	role := domainauth.RoleEmployee
	for _, g := range groups {
		if m.AdminGroup != "" && g == m.AdminGroup {
			role = domainauth.RoleAdmin
			break
		}
	}

	hr := m.DefaultHr
	if hr == "" {
		hr = domainauth.HrOne
	}
	for _, g := range groups {
		if tag, ok := m.HrGroups[g]; ok {
			hr = tag
			break
		}
	}

	return role, hr
}
