package guard

import "github.com/BruksfildServices01/barber-booking/internal/apperr"

type Role string

const (
	RoleClient Role = "CLIENT"
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// Identity é a identidade autenticada da requisição.
type Identity struct {
	UserID string
	Role   Role
}

func (id Identity) Known() bool {
	return id.UserID != ""
}

// Tabela de papéis exigidos por operação. Mantida declarativa para não
// espalhar comparações de string pelos serviços.
var (
	UserListRoles         = []Role{RoleAdmin}
	UserDeleteRoles       = []Role{RoleAdmin}
	BarbershopCreateRoles = []Role{RoleOwner}
	BarbershopDeleteRoles = []Role{RoleAdmin}
	AppointmentListRoles  = []Role{RoleAdmin}
	AuditListRoles        = []Role{RoleAdmin}
)

func HasRole(r Role, allowed []Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// RequireSelf: a identidade atuante precisa ser exatamente o alvo.
// Sem exceção por papel.
func RequireSelf(actor Identity, targetID, action string) error {
	if !actor.Known() || actor.UserID != targetID {
		return apperr.Permission("Você não tem permissão para %s.", action)
	}
	return nil
}

// RequireSelfOrRole: o alvo pode agir sobre si mesmo, ou um papel da lista
// pode agir sobre qualquer um (ex.: ADMIN deletando barbearias).
func RequireSelfOrRole(actor Identity, targetID string, allowed []Role, action string) error {
	if !actor.Known() {
		return apperr.Permission("Você não tem permissão para %s.", action)
	}
	if actor.UserID == targetID || HasRole(actor.Role, allowed) {
		return nil
	}
	return apperr.Permission("Você não tem permissão para %s.", action)
}

// RequireRole: falha de papel puro, sem dono envolvido.
func RequireRole(actor Identity, allowed []Role, message string) error {
	if !actor.Known() || !HasRole(actor.Role, allowed) {
		return apperr.Forbidden("%s", message)
	}
	return nil
}
