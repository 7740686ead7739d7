package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"leads-admin-service/internal/model"
)

// Calendar привязывает расчёт окон к часовому поясу, первому дню недели и часам.
type Calendar struct {
	Now       func() time.Time
	Location  *time.Location
	WeekStart time.Weekday
}

// NewCalendar создаёт календарь на системных часах.
func NewCalendar(loc *time.Location, weekStart time.Weekday) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{Now: time.Now, Location: loc, WeekStart: weekStart}
}

func (c Calendar) now() time.Time {
	if c.Now == nil {
		return time.Now().In(c.loc())
	}
	return c.Now().In(c.loc())
}

func (c Calendar) loc() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// StartOfDay возвращает 00:00:00.000 того же календарного дня.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay возвращает 23:59:59.999 того же календарного дня.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// startOfWeek отступает от начала дня до ближайшего weekStart.
func (c Calendar) startOfWeek(day time.Time) time.Time {
	offset := (int(day.Weekday()) - int(c.WeekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// Windows считает окна отчёта по команде относительно текущего момента.
// Окна «сегодня», «неделя», «месяц» заканчиваются сейчас; прошлый месяц берётся
// целиком, с первого дня 00:00:00.000 по последний день 23:59:59.999.
func (c Calendar) Windows() model.PerformanceWindows {
	now := c.now()
	today := StartOfDay(now)
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := month.AddDate(0, -1, 0)

	return model.PerformanceWindows{
		Today:     model.Window{Start: today, End: now},
		Week:      model.Window{Start: c.startOfWeek(today), End: now},
		Month:     model.Window{Start: month, End: now},
		LastMonth: model.Window{Start: lastMonth, End: month.Add(-time.Millisecond)},
	}
}

// Диапазоны аналитики панели.
const (
	RangeDaily     = "daily"
	RangeYesterday = "yesterday"
	RangeWeekly    = "weekly"
	RangeMonthly   = "monthly"
	RangeLastMonth = "lastMonth"
)

// RangeWindow возвращает окно для именованного диапазона; пустое имя означает daily.
// В отличие от Windows, текущие периоды заканчиваются в конце сегодняшнего дня.
func (c Calendar) RangeWindow(name string) (model.Window, error) {
	w := c.Windows()
	endOfToday := EndOfDay(w.Today.Start)

	switch name {
	case "", RangeDaily:
		return model.Window{Start: w.Today.Start, End: endOfToday}, nil
	case RangeYesterday:
		y := w.Today.Start.AddDate(0, 0, -1)
		return model.Window{Start: y, End: EndOfDay(y)}, nil
	case RangeWeekly:
		return model.Window{Start: w.Week.Start, End: endOfToday}, nil
	case RangeMonthly:
		return model.Window{Start: w.Month.Start, End: endOfToday}, nil
	case RangeLastMonth:
		return w.LastMonth, nil
	}
	return model.Window{}, fmt.Errorf("unknown range %q", name)
}

// DayRange разбирает две даты и нормализует их к границам суток: from — 00:00:00.000,
// to — 23:59:59.999. Пустой to означает тот же день, что и from.
func (c Calendar) DayRange(from, to string) (model.Window, error) {
	start, err := ParseFlexibleDate(from, c.loc())
	if err != nil {
		return model.Window{}, fmt.Errorf("from: %w", err)
	}
	if strings.TrimSpace(to) == "" {
		to = from
	}
	endBase, err := ParseFlexibleDate(to, c.loc())
	if err != nil {
		return model.Window{}, fmt.Errorf("to: %w", err)
	}

	w := model.Window{Start: start, End: EndOfDay(endBase)}
	if w.Start.After(w.End) {
		return model.Window{}, errRangeInverted
	}
	return w, nil
}

var (
	errDateFormat    = errors.New("invalid date format, use YYYY-MM-DD or MM-DD-YYYY/YY")
	errDateInvalid   = errors.New("not a valid calendar date")
	errRangeInverted = errors.New(`"from" must be on or before "to"`)
)

// ParseFlexibleDate понимает YYYY-MM-DD, MM-DD-YYYY и MM-DD-YY (год 2000+YY)
// и возвращает начало этих суток в loc. Несуществующие даты вроде 2024-02-30 отклоняются.
func ParseFlexibleDate(input string, loc *time.Location) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(input), "-")
	if len(parts) != 3 {
		return time.Time{}, errDateFormat
	}

	var yearStr, monthStr, dayStr string
	if len(parts[0]) == 4 {
		yearStr, monthStr, dayStr = parts[0], parts[1], parts[2]
	} else {
		monthStr, dayStr, yearStr = parts[0], parts[1], parts[2]
		if len(yearStr) != 2 && len(yearStr) != 4 {
			return time.Time{}, errDateFormat
		}
	}

	year, err := atoiDigits(yearStr)
	if err != nil {
		return time.Time{}, errDateFormat
	}
	if len(yearStr) == 2 {
		year += 2000
	}
	month, err := atoiDigits(monthStr)
	if err != nil {
		return time.Time{}, errDateFormat
	}
	day, err := atoiDigits(dayStr)
	if err != nil {
		return time.Time{}, errDateFormat
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, errDateInvalid
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, errDateInvalid
	}
	return t, nil
}

// atoiDigits принимает только непустую строку из ASCII-цифр (без знака и пробелов).
func atoiDigits(s string) (int, error) {
	if s == "" || len(s) > 4 {
		return 0, errDateFormat
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errDateFormat
		}
	}
	return strconv.Atoi(s)
}
