package pos

const (
	MinPINLength = 4
	MaxPINLength = 12
)

// ValidatePIN: hanya digit, panjang 4-12.
func ValidatePIN(pin string) error {
	if len(pin) < MinPINLength || len(pin) > MaxPINLength {
		return ErrPINFormat
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrPINFormat
		}
	}
	return nil
}

// Authenticate mencocokkan PIN plaintext ke daftar user (user pertama yang cocok).
// Tidak ada lockout maupun hitungan percobaan.
func Authenticate(users []User, pin string) (User, error) {
	if pin == "" {
		return User{}, ErrInvalidPIN
	}
	for _, u := range users {
		if u.PIN == pin {
			return u, nil
		}
	}
	return User{}, ErrInvalidPIN
}

func FindUser(users []User, id string) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
