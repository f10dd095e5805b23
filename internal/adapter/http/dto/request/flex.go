package request

import (
	"strconv"
	"strings"
)

// The registration form historically posts numeric fields either as JSON
// numbers or as strings, depending on the input widget. looseFloat and
// looseInt accept both and default to zero on anything unparsable, matching
// the zero-defaulted contract of the registration flow. They never error.

type looseFloat float64

func (f *looseFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(b)), `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = looseFloat(v)
	return nil
}

type looseInt int

func (i *looseInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(b)), `"`))
	if s == "" || s == "null" {
		*i = 0
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		if fv, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			*i = looseInt(fv)
			return nil
		}
		*i = 0
		return nil
	}
	*i = looseInt(v)
	return nil
}
