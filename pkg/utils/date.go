package utils

import "time"

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = time.RFC3339
)

// ParseDate aceita data simples ou RFC3339; string vazia devolve nil
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(dateTimeLayout, dateStr)
	if err != nil {
		date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, err
		}
	}

	return &date, nil
}
