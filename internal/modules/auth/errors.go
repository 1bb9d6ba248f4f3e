package auth

const (
	msgInvalidCredentials = "Invalid credentials"
	msgUserNotFound       = "User not found"
	msgInvalidLink        = "Link expired or invalid"
	msgResetSent          = "Password reset email sent"
	msgPasswordReset      = "Password has been reset"
)
