package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Role tags an identity as one side of a link.
type Role string

const (
	RoleMerchant Role = "merchant"
	RoleUser     Role = "user"
)

// Valid reports whether the role is one of the two known tags.
func (r Role) Valid() bool {
	return r == RoleMerchant || r == RoleUser
}

// Merchant is a store owner holding prepaid balances for its users.
type Merchant struct {
	ID           string    `json:"id"` // MRxxxxxx
	StoreName    string    `json:"store_name"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// User is a customer holding prepaid balances with merchants.
type User struct {
	ID           string    `json:"id"` // URxxxxxx
	Name         string    `json:"user_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewMerchantID generates a merchant identifier of the form MRxxxxxx.
func NewMerchantID() string {
	return "MR" + randomIDSuffix()
}

// NewUserID generates a user identifier of the form URxxxxxx.
func NewUserID() string {
	return "UR" + randomIDSuffix()
}

// randomIDSuffix returns 6 uppercase hex chars derived from random bytes.
func randomIDSuffix() string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failure means the process is in serious trouble.
		panic(err)
	}
	sum := sha256.Sum256(buf)
	return strings.ToUpper(hex.EncodeToString(sum[:])[:6])
}
