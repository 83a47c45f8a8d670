package model

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterDTO struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse accepts the token under either field name the backend has
// been observed to use.
type TokenResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
}

// BearerToken returns whichever token field is populated.
func (r TokenResponse) BearerToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

// APIError is the error body shape of the backend.
type APIError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
