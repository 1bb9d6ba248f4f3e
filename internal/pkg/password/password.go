package password

import "golang.org/x/crypto/bcrypt"

// DefaultRounds is the bcrypt cost used when the caller passes <= 0.
const DefaultRounds = 13

// Hash salts and hashes plain with the given number of bcrypt rounds.
func Hash(plain string, rounds int) (string, error) {
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), rounds)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
