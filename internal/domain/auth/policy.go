package auth

// GuardKind tags the variants of a route-guard policy.
type GuardKind string

const (
	// GuardPublicOnly admits only anonymous requests; authenticated sessions
	// are sent to the signed-in landing page.
	GuardPublicOnly GuardKind = "public_only"
	// GuardRoleList admits sessions whose Hr tag is in a configured set.
	GuardRoleList GuardKind = "role_list"
	// GuardSingleRole admits sessions holding one required role.
	GuardSingleRole GuardKind = "single_role"
)

// GuardPolicy is a tagged variant describing how a route subtree is gated.
// One policy value replaces the three near-identical guard implementations of
// the legacy dashboard (Public/Protected/Admin): construct with PublicOnly,
// RoleList, or SingleRole.
type GuardPolicy struct {
	Kind         GuardKind
	AllowedHr    map[HrTag]struct{}
	RequiredRole Role
}

// PublicOnly returns the policy for routes reachable only while anonymous,
// such as the login screen.
func PublicOnly() GuardPolicy {
	return GuardPolicy{Kind: GuardPublicOnly}
}

// RoleList returns the policy admitting sessions issued by any of the given
// regional HR instances.
func RoleList(tags ...HrTag) GuardPolicy {
	allowed := make(map[HrTag]struct{}, len(tags))
	for _, t := range tags {
		allowed[t] = struct{}{}
	}
	return GuardPolicy{Kind: GuardRoleList, AllowedHr: allowed}
}

// SingleRole returns the policy admitting sessions that hold exactly the
// given role.
func SingleRole(role Role) GuardPolicy {
	return GuardPolicy{Kind: GuardSingleRole, RequiredRole: role}
}

// Decision is the outcome of applying a GuardPolicy to a resolved session.
// A guard reaches exactly one decision per check: render (Allow) or redirect.
type Decision string

const (
	// DecisionAllow renders the gated subtree.
	DecisionAllow Decision = "allow"
	// DecisionRedirectHome redirects to the application root.
	DecisionRedirectHome Decision = "redirect_home"
	// DecisionRedirectDashboard redirects to the signed-in landing page.
	DecisionRedirectDashboard Decision = "redirect_dashboard"
)

// Decide applies the policy to the resolved session state. A nil session means
// the identity check resolved unauthenticated; failed checks must be mapped to
// nil by the caller before deciding (fail closed).
func (p GuardPolicy) Decide(session *Session) Decision {
	switch p.Kind {
	case GuardPublicOnly:
		if session != nil {
			return DecisionRedirectDashboard
		}
		return DecisionAllow
	case GuardRoleList:
		if session == nil {
			return DecisionRedirectHome
		}
		if _, ok := p.AllowedHr[session.Hr]; ok {
			return DecisionAllow
		}
		return DecisionRedirectHome
	case GuardSingleRole:
		if session == nil {
			return DecisionRedirectHome
		}
		if session.Role == p.RequiredRole {
			return DecisionAllow
		}
		return DecisionRedirectHome
	default:
		// Unknown policies never admit.
		return DecisionRedirectHome
	}
}
