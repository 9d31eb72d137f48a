package model

// Handle — слабая ссылка на тело в реестре сцены.
// Index адресует слот арены, Gen защищает от переиспользования слота:
// после удаления тела старый Handle больше не разрешается.
// Нулевой Handle невалиден.
type Handle struct {
	Index uint32
	Gen   uint32
}

// IsZero reports whether the handle was never assigned.
func (h Handle) IsZero() bool {
	return h.Gen == 0
}
