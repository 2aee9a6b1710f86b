package pool

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidDenomination = errors.New("denomination must be a positive integer")
	ErrInvalidCode         = errors.New("invalid promo code format")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Generated codes carry the denomination after this prefix, e.g. BON100X7K.
const CodePrefix = "BON"

type Denomination int

func NewDenomination(v int) (Denomination, error) {
	if v <= 0 {
		return 0, ErrInvalidDenomination
	}
	return Denomination(v), nil
}

func ParseDenomination(s string) (Denomination, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidDenomination
	}
	return NewDenomination(v)
}

func (d Denomination) Int() int { return int(d) }

func (d Denomination) String() string { return strconv.Itoa(int(d)) }

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// RandomPartLen is the length of the random tail for a generated code of the
// given denomination, keeping short denominations at least three characters.
func RandomPartLen(d Denomination) int {
	return max(3, 7-len(d.String()))
}

// IssuedFor reports whether c carries the BON prefix of d. The random tail may
// start with a digit, so a code can also match a longer denomination:
// BON1000AB is a valid code for both 100 and 1000.
func (c Code) IssuedFor(d Denomination) bool {
	return strings.HasPrefix(string(c), CodePrefix+d.String())
}
