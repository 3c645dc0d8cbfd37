// Package bankaccount checks Spanish CCC and IBAN account numbers.
package bankaccount

import (
	"math/big"
	"strings"
)

var cccWeights = [10]int{1, 2, 4, 8, 5, 10, 9, 7, 3, 6}

// Validator implements the checksum checks used before a remittance is
// generated.
type Validator struct{}

// IsValid reports whether number is a valid account for countryCode.
// Spanish accounts may be given as a 20-digit CCC or as an IBAN; other
// countries must use an IBAN.
func (Validator) IsValid(countryCode, number string) bool {
	n := Normalize(number)
	if n == "" {
		return false
	}
	if isDigits(n) {
		return strings.EqualFold(countryCode, "ES") && ValidCCC(n)
	}
	if !ValidIBAN(n) {
		return false
	}
	if n[:2] == "ES" {
		return ValidCCC(n[4:])
	}
	return true
}

// Normalize uppercases number and drops spaces and dashes.
func Normalize(number string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '\t':
			return -1
		}
		if r >= 'a' && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}, number)
}

// Domestic returns the 20-digit CCC carried by a Spanish IBAN, or the
// normalized number unchanged.
func Domestic(number string) string {
	n := Normalize(number)
	if len(n) == 24 && n[:2] == "ES" {
		return n[4:]
	}
	return n
}

// ValidCCC checks both control digits of a 20-digit Spanish account:
// entity(4) office(4) control(2) account(10).
func ValidCCC(ccc string) bool {
	if len(ccc) != 20 || !isDigits(ccc) {
		return false
	}
	first := controlDigit("00" + ccc[0:8])
	second := controlDigit(ccc[10:20])
	return ccc[8] == first && ccc[9] == second
}

func controlDigit(digits string) byte {
	sum := 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * cccWeights[i]
	}
	d := 11 - sum%11
	switch d {
	case 11:
		d = 0
	case 10:
		d = 1
	}
	return byte('0' + d)
}

// ValidIBAN runs the ISO 13616 mod-97 check.
func ValidIBAN(iban string) bool {
	if len(iban) < 15 || len(iban) > 34 {
		return false
	}
	if !isLetter(iban[0]) || !isLetter(iban[1]) || !isDigits(iban[2:4]) {
		return false
	}
	rearranged := iban[4:] + iban[:4]
	var sb strings.Builder
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		switch {
		case c >= '0' && c <= '9':
			sb.WriteByte(c)
		case isLetter(c):
			sb.WriteString(itoa(int(c-'A') + 10))
		default:
			return false
		}
	}
	n, ok := new(big.Int).SetString(sb.String(), 10)
	if !ok {
		return false
	}
	return new(big.Int).Mod(n, big.NewInt(97)).Int64() == 1
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func itoa(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
