// Package randompkg provides functionality gor generating random applications common items.
package randompkg

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/bpnbank/bpn-bank/pkg/instrumentpkg"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// Int64Between generates a random integer between min and max inclusive.
func Int64Between(min, max int64) int64 {
	if max <= min {
		return min
	}

	return min + Intn(int(max-min+1))
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Owner generates a random account name.
func Owner() string {
	return String(6)
}

// Amount generates a random ledger amount between min and max.
func Amount(min, max int64) int64 {
	return Int64Between(min, max)
}

// Symbol generates a random tracked instrument symbol.
func Symbol() string {
	return instrumentpkg.TrackedSymbols[Intn(len(instrumentpkg.TrackedSymbols))]
}
