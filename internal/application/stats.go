package app

import (
	"sort"

	"facemask/internal/domain/entity"
	"facemask/internal/domain/port"
)

// ClassCount число объектов одного класса.
type ClassCount struct {
	Class entity.ClassLabel `json:"class" yaml:"class"`
	Count int               `json:"count" yaml:"count"`
}

// Stats сводка по датасету.
type Stats struct {
	Images  int          `json:"images" yaml:"images"`
	Objects int          `json:"objects" yaml:"objects"`
	Classes []ClassCount `json:"classes" yaml:"classes"`
}

// Summarize считает изображения, объекты и распределение классов.
func Summarize(ds port.Dataset) (Stats, error) {
	counts := make(map[entity.ClassLabel]int)
	stats := Stats{Images: ds.Size()}

	for i := 0; i < ds.Size(); i++ {
		entry, err := ds.Get(i)
		if err != nil {
			return Stats{}, err
		}
		for _, obj := range entry.Objects {
			counts[obj.Class]++
			stats.Objects++
		}
	}

	for _, c := range orderedClasses(counts) {
		stats.Classes = append(stats.Classes, ClassCount{Class: c, Count: counts[c]})
	}
	return stats, nil
}

// orderedClasses известные классы в фиксированном порядке, затем прочие по алфавиту.
func orderedClasses(counts map[entity.ClassLabel]int) []entity.ClassLabel {
	ordered := make([]entity.ClassLabel, 0, len(counts))
	for _, c := range entity.Classes {
		if counts[c] > 0 {
			ordered = append(ordered, c)
		}
	}

	var unknown []entity.ClassLabel
	for c := range counts {
		if !c.Known() {
			unknown = append(unknown, c)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	return append(ordered, unknown...)
}
