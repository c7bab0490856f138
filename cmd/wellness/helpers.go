// ABOUTME: Small helpers shared by CLI commands.
// ABOUTME: Day parsing, text padding and yes/no confirmation.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/harperreed/wellness/internal/models"
)

var dayAliases = map[string]int{
	"lunes": 0, "martes": 1, "miercoles": 2, "jueves": 3, "viernes": 4, "sabado": 5, "domingo": 6,
	"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3, "friday": 4, "saturday": 5, "sunday": 6,
}

// parseDay accepts 1-7 or a day name (Spanish or English, accents optional)
// and returns the zero-based day index.
func parseDay(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > models.DaysPerWeek {
			return 0, fmt.Errorf("day must be between 1 and %d, got %d", models.DaysPerWeek, n)
		}
		return n - 1, nil
	}
	if i, ok := dayAliases[stripAccents(strings.ToLower(s))]; ok {
		return i, nil
	}
	return 0, fmt.Errorf("unknown day: %q (use 1-7 or a day name like Lunes)", s)
}

func stripAccents(s string) string {
	return strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u").Replace(s)
}

func dayLabel(index int) string {
	return fmt.Sprintf("%d %s", index+1, models.DayNames[index])
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	r := []rune(s)
	if maxLen < 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

// confirm prints prompt and reads a y/yes answer from in.
func confirm(in io.Reader, prompt string) bool {
	fmt.Print(prompt)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes" || response == "s" || response == "si" || response == "sí"
}
