package patient

import (
	"strings"
)

// Field names as they appear on the wire.
const (
	FieldName          = "name"
	FieldAge           = "age"
	FieldSex           = "sex"
	FieldBloodPressure = "blood_pressure"
	FieldCholesterol   = "cholesterol"
	FieldChestPainType = "chest_pain_type"
)

// Warning describes a field that could not be coerced cleanly.
type Warning struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// Raw holds request fields as received, before coercion.
type Raw struct {
	Name          string
	Age           string
	Sex           string
	BloodPressure string
	Cholesterol   string
	ChestPainType string
}

// ParseInt parses the leading base-10 integer of s. Leading whitespace and a
// single sign are accepted and parsing stops at the first non-digit, so
// "160mmHg" yields 160 and "3.7" yields 3. Input without a leading digit
// yields an invalid reading.
func ParseInt(s string) Reading {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	const maxValue = int(^uint32(0) >> 1)
	n := 0
	digits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		digits++
		if n > (maxValue-int(c-'0'))/10 {
			n = maxValue
			continue
		}
		n = n*10 + int(c-'0')
	}
	if digits == 0 {
		return Missing
	}
	if neg {
		n = -n
	}
	return Of(n)
}

// ParseSex maps a reported sex onto the enumerated type. Matching is case
// insensitive; the boolean is false when the value was not recognized.
func ParseSex(s string) (Sex, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return SexMale, true
	case "female", "f":
		return SexFemale, true
	case "other":
		return SexOther, true
	case "":
		return SexUnspecified, false
	default:
		return SexOther, false
	}
}

// Coerce converts raw fields into a Record. It never fails: every field that
// cannot be coerced becomes an invalid reading or SexUnspecified/SexOther and
// is reported in the returned warnings, in field order.
func Coerce(raw Raw) (Record, []Warning) {
	var warnings []Warning
	reading := func(field, value string) Reading {
		r := ParseInt(value)
		if !r.Valid {
			msg := "not a number; comparisons treat it as below every threshold"
			if strings.TrimSpace(value) == "" {
				msg = "missing; comparisons treat it as below every threshold"
			}
			warnings = append(warnings, Warning{Field: field, Value: value, Message: msg})
		}
		return r
	}

	rec := Record{Name: raw.Name}
	rec.Age = reading(FieldAge, raw.Age)

	sex, ok := ParseSex(raw.Sex)
	if !ok {
		msg := "unrecognized; treated as not male"
		if strings.TrimSpace(raw.Sex) == "" {
			msg = "missing; treated as not male"
		}
		warnings = append(warnings, Warning{Field: FieldSex, Value: raw.Sex, Message: msg})
	}
	rec.Sex = sex

	rec.BloodPressure = reading(FieldBloodPressure, raw.BloodPressure)
	rec.Cholesterol = reading(FieldCholesterol, raw.Cholesterol)
	rec.ChestPain = reading(FieldChestPainType, raw.ChestPainType)
	return rec, warnings
}
