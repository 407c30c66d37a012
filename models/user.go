package models

// User is the profile unpacked from the login_data JWT payload. The BFF never
// verifies the signature; token issuance and validation are the upstream's job.
type User struct {
	UserID       int64   `json:"user_id"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	FirstName    string  `json:"first_name"`
	LastName     *string `json:"last_name"`
	PhotoProfile *string `json:"photo_profile"`
	CreatedAt    string  `json:"created_at"`
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterPayload struct {
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
}

type SendOtpPayload struct {
	Email string `json:"email"`
}
