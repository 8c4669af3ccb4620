package common

import (
	"crypto/rand"
	"math/big"
)

const (
	Alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	UpperAlnum   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	Numeric      = "0123456789"
)

// RandomString returns n characters drawn uniformly from charset.
func RandomString(n int, charset string) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(charset)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = charset[idx.Int64()]
	}
	return string(out), nil
}
