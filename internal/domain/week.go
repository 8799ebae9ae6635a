package domain

import "time"

// WeekWindow окно из семи последовательных дат, начиная с произвольного
// якорного дня. Производная модель для отрисовки сетки, нигде не хранится.
type WeekWindow struct {
	anchor time.Time
}

// NewWeekWindow создает окно с якорем на указанной дате.
// Время внутри даты обнуляется, сравнение идёт только по календарным дням.
func NewWeekWindow(anchor time.Time) WeekWindow {
	return WeekWindow{anchor: truncateToDay(anchor)}
}

// Anchor возвращает первую дату окна
func (w WeekWindow) Anchor() time.Time {
	return w.anchor
}

// End возвращает последнюю дату окна (включительно)
func (w WeekWindow) End() time.Time {
	return w.anchor.AddDate(0, 0, DaysPerWeek-1)
}

// Dates возвращает все семь дат окна по порядку
func (w WeekWindow) Dates() []time.Time {
	dates := make([]time.Time, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		dates[i] = w.anchor.AddDate(0, 0, i)
	}
	return dates
}

// Next возвращает окно, сдвинутое на неделю вперёд
func (w WeekWindow) Next() WeekWindow {
	return WeekWindow{anchor: w.anchor.AddDate(0, 0, DaysPerWeek)}
}

// Prev возвращает окно, сдвинутое на неделю назад
func (w WeekWindow) Prev() WeekWindow {
	return WeekWindow{anchor: w.anchor.AddDate(0, 0, -DaysPerWeek)}
}

// Equal возвращает true, если окна совпадают день в день
func (w WeekWindow) Equal(other WeekWindow) bool {
	return w.anchor.Equal(other.anchor)
}

// Contains возвращает true, если дата попадает в окно
func (w WeekWindow) Contains(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(w.anchor) && !d.After(w.End())
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
