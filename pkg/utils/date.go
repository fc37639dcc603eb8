package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const brDateLayout = "02/01/2006"

var brDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// ParseBRDate interpreta datas no formato DD/MM/YYYY como dia de calendário em UTC.
// Datas impossíveis (ex: 31/02/2024) são rejeitadas.
func ParseBRDate(dateStr string) (time.Time, error) {
	value := strings.TrimSpace(dateStr)
	if !brDatePattern.MatchString(value) {
		return time.Time{}, fmt.Errorf("data fora do formato DD/MM/AAAA: %q", dateStr)
	}

	date, err := time.ParseInLocation(brDateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q: %w", dateStr, err)
	}

	return date, nil
}
