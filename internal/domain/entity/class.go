package entity

// ClassLabel класс размеченного лица
type ClassLabel string

const (
	ClassWithMask            ClassLabel = "with_mask"             // маска надета правильно
	ClassMaskWearedIncorrect ClassLabel = "mask_weared_incorrect" // маска надета неправильно
	ClassWithoutMask         ClassLabel = "without_mask"          // маски нет
)

// Classes перечисляет все известные классы в фиксированном порядке.
var Classes = []ClassLabel{ClassWithMask, ClassMaskWearedIncorrect, ClassWithoutMask}

// Known сообщает, входит ли класс в закрытый набор.
func (c ClassLabel) Known() bool {
	for _, known := range Classes {
		if c == known {
			return true
		}
	}
	return false
}
