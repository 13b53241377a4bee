package virtualtable

import (
	"strconv"

	"uyumplast-system/pkg/constants"
)

// Replay сворачивает события (в порядке возрастания created_at) в текущее
// состояние таблицы. INSERT/UPDATE с непустым new_data целиком заменяет
// запись (слияния полей нет), DELETE убирает её. Чистая функция.
func Replay(events []Event) map[string]VirtualRow {
	state := make(map[string]VirtualRow)

	for _, e := range events {
		switch e.Action {
		case constants.ActionInsert, constants.ActionUpdate:
			if e.NewData == nil {
				continue
			}
			row := make(VirtualRow, len(e.NewData)+1)
			for k, v := range e.NewData {
				row[k] = v
			}
			row["id"] = e.RecordID
			state[e.RecordID] = row
		case constants.ActionDelete:
			delete(state, e.RecordID)
		}
	}

	return state
}

// MatchesFilter - предикат равенства по именованным полям. Пустой фильтр
// пропускает всё; отсутствующее в записи поле сравнивается как nil.
func MatchesFilter(row VirtualRow, filter map[string]interface{}) bool {
	for field, want := range filter {
		stored, ok := row[field]
		if !ok {
			stored = nil
		}
		if !filterValueMatches(stored, want) {
			return false
		}
	}
	return true
}

// filterValueMatches сравнивает значение записи с фильтром. Значения из
// query-строки всегда строки, а журнал после JSON хранит числа как float64
// и булевы как bool, поэтому строковый фильтр дотягивается до этих типов.
func filterValueMatches(stored, want interface{}) bool {
	if stored == want {
		return true
	}
	s, ok := want.(string)
	if !ok {
		return false
	}
	switch v := stored.(type) {
	case float64:
		parsed, err := strconv.ParseFloat(s, 64)
		return err == nil && parsed == v
	case bool:
		parsed, err := strconv.ParseBool(s)
		return err == nil && parsed == v
	}
	return false
}
