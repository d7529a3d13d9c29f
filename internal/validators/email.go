package validators

import (
	"net/mail"
	"strings"
)

// IsEmail accepts a bare address such as "demo@barbercraft.com".
func IsEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	at := strings.LastIndex(addr.Address, "@")
	return addr.Address == email && at > 0 && at < len(email)-1
}
