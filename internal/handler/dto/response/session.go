package response

type SessionResponse struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}
