package validators

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsClock accepts a zero-padded 24h "HH:MM".
func IsClock(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
