package models

// Role classifies an account's permission level.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Account is a user account record as exposed by the /users endpoints.
// Password and PasswordConfirm are write-only: the remote store never
// returns them, and they are only mandatory when creating a new account.
type Account struct {
	ID              string `json:"_id,omitempty"`
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password,omitempty"`
	PasswordConfirm string `json:"passwordConfirm,omitempty"`
	Role            Role   `json:"role" validate:"required,oneof=admin user"`
}

// EmptyAccount returns the template used when adding a new account.
func EmptyAccount() Account {
	return Account{}
}

func (a Account) GetID() string { return a.ID }

func (a Account) Label() string { return a.Name }

// IsNew reports whether the record has not been created remotely yet.
func (a Account) IsNew() bool { return a.ID == "" }

// Clone returns an independent copy. Account has no reference-typed fields,
// so a value copy is sufficient.
func (a Account) Clone() Account { return a }
