package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidPrice = errors.New("price must be a non-negative amount")

// Money is an amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrInvalidPrice
	}
	return Money{cents: cents}, nil
}

// ParseMoney accepts decimal strings such as "50", "50.5" or "50.00".
func ParseMoney(s string) (Money, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return Money{}, ErrInvalidPrice
	}
	return Money{cents: int64(math.Round(f * 100))}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

// String renders the amount without a currency sign, dropping ".00" for whole amounts.
func (m Money) String() string {
	if m.cents%100 == 0 {
		return strconv.FormatInt(m.cents/100, 10)
	}
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

func ReconstructMoney(cents int64) Money {
	return Money{cents: cents}
}
