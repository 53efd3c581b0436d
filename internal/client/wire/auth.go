package wire

// RoleAdmin is the role value the role endpoint reports for administrators.
const RoleAdmin = "admin"

type RegisterRequest struct {
	Username string   `json:"Username"`
	Password string   `json:"Password"`
	Utensils []string `json:"Utensils"`
}

// NewRegisterRequest always sends Utensils as an array, never null.
func NewRegisterRequest(username, password string) RegisterRequest {
	return RegisterRequest{Username: username, Password: password, Utensils: []string{}}
}

type LoginRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

// LoginResponse tolerates both token field names seen on deployments; older
// servers return only a status.
type LoginResponse struct {
	Status      string `json:"status"`
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
}

func (r LoginResponse) BearerToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

type RoleResponse struct {
	Role string `json:"role"`
}

func (r RoleResponse) IsAdmin() bool { return r.Role == RoleAdmin }
