package dto

type AdminLoginRequest struct {
	Secret string `json:"secret"`
}

type AdminLoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
