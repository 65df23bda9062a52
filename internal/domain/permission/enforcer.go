package permission

// Enforcer answers whether a role may perform an action on a resource.
// Scope strings have the form "resource:action".
type Enforcer interface {
	Enforce(roleCode string, resource string, action string) (bool, error)
	EnforceScope(roleCode string, scope string) (bool, error)
	AddPolicy(roleCode string, resource string, action string) error
	RemovePolicy(roleCode string, resource string, action string) error
	GetPermissionsForRole(roleCode string) ([][]string, error)
	LoadPolicy() error
}
