package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Password policy for provisioning: at least one lower, one upper and
// one digit. Lookaheads need regexp2; the stdlib engine rejects them.
const passwordPolicyPattern = `^(?=.*[a-z])(?=.*[A-Z])(?=.*\d).{8,}$`

var (
	passwordPolicy = regexp2.MustCompile(passwordPolicyPattern, regexp2.None)

	errWeakPassword = errors.New("the password must be at least 8 characters and contain an uppercase letter, a lowercase letter and a number")
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&req.Password, validation.Required, validation.Length(6, 0)),
	)
}

type CreateUserRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	Position    string `json:"position"`
	Description string `json:"description"`
}

func (req *CreateUserRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.FullName, validation.Length(3, 100)),
		validation.Field(&req.Position, validation.Required,
			validation.In("RECEIVING", "SHIPPING", "IT", "MANAGEMENT")),
		validation.Field(&req.Description, validation.Length(0, 200)),
	)
	if err != nil {
		return err
	}

	if ok, _ := passwordPolicy.MatchString(req.Password); !ok {
		return errWeakPassword
	}

	return nil
}
