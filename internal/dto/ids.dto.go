package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidID = errors.New("invalid id")

const barberPrefix = "barber_"

// ParseID accepts "3" and the public barber form "barber_3".
func ParseID(s string) (uint, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), barberPrefix)
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return 0, ErrInvalidID
	}
	return uint(n), nil
}

func BarberID(id uint) string {
	return barberPrefix + strconv.FormatUint(uint64(id), 10)
}

// FlexID decodes 3, "3" or "barber_3". Empty strings and null decode to 0.
type FlexID uint

func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}

	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		if n < 0 || n != float64(uint(n)) {
			return ErrInvalidID
		}
		*f = FlexID(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidID
	}
	if strings.TrimSpace(s) == "" {
		*f = 0
		return nil
	}
	id, err := ParseID(s)
	if err != nil {
		return err
	}
	*f = FlexID(id)
	return nil
}

// Ptr is nil for a missing or zero id.
func (f *FlexID) Ptr() *uint {
	if f == nil || *f == 0 {
		return nil
	}
	id := uint(*f)
	return &id
}

// OptionalID tells an absent key apart from an explicit null.
type OptionalID struct {
	Set bool
	ID  *uint
}

func (o *OptionalID) UnmarshalJSON(b []byte) error {
	var f FlexID
	if err := f.UnmarshalJSON(b); err != nil {
		return err
	}
	o.Set = true
	o.ID = f.Ptr()
	return nil
}
