package entity

// Action names an operation checked by the authorization guard.
type Action string

const (
	ActionSignup         Action = "signup"
	ActionSignin         Action = "signin"
	ActionListUsuarios   Action = "list_usuarios"
	ActionUpdateSelf     Action = "update_self"
	ActionDeleteSelf     Action = "delete_self"
	ActionListComercios  Action = "list_comercios"
	ActionGetComercio    Action = "get_comercio"
	ActionCreateComercio Action = "create_comercio"
	ActionUpdateComercio Action = "update_comercio"
	ActionDeleteComercio Action = "delete_comercio"
	ActionListWebs       Action = "list_webs"
	ActionGetWeb         Action = "get_web"
	ActionCreateWeb      Action = "create_web"
	ActionUpdateWeb      Action = "update_web"
	ActionDeleteWeb      Action = "delete_web"
	ActionUploadFoto     Action = "upload_foto"
	ActionCreateResena   Action = "create_resena"
)

// IsPublic reports whether the action may be performed without a token.
func (a Action) IsPublic() bool {
	switch a {
	case ActionSignup, ActionSignin, ActionListUsuarios,
		ActionListComercios, ActionGetComercio,
		ActionListWebs, ActionGetWeb:
		return true
	default:
		return false
	}
}

// RequiredKind returns the principal kind an action is reserved for.
// Public actions return an empty kind.
func (a Action) RequiredKind() PrincipalKind {
	switch a {
	case ActionUpdateSelf, ActionDeleteSelf, ActionCreateResena,
		ActionCreateComercio, ActionUpdateComercio, ActionDeleteComercio:
		return PrincipalUsuario
	case ActionCreateWeb, ActionUpdateWeb, ActionDeleteWeb, ActionUploadFoto:
		return PrincipalComercio
	default:
		return ""
	}
}

// RequiresAdmin reports whether the action needs the admin role.
func (a Action) RequiresAdmin() bool {
	return a == ActionCreateComercio || a == ActionUpdateComercio || a == ActionDeleteComercio
}
