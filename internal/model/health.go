package model

// Health — очки здоровья NPC с односторонним переходом Alive → Dead.
// Не потокобезопасен: владелец (контроллер) сериализует доступ.
type Health struct {
	current float64
	max     float64
	dead    bool
}

// NewHealth создаёт Health с current = max.
// max < 1 поднимается до 1.
func NewHealth(max float64) Health {
	if max < 1 {
		max = 1
	}
	return Health{current: max, max: max}
}

// Current возвращает текущее HP.
func (h *Health) Current() float64 {
	return h.current
}

// Max возвращает максимальное HP.
func (h *Health) Max() float64 {
	return h.max
}

// Dead проверяет, мёртв ли NPC.
func (h *Health) Dead() bool {
	return h.dead
}

// Subtract applies damage and reports whether this call performed the
// death transition (first caller wins). Health is clamped to 0 on death.
// Does nothing once dead or for non-applicable amounts.
func (h *Health) Subtract(amount float64) (died bool) {
	if h.dead || !(DamageEvent{Amount: amount}).Applicable() {
		return false
	}

	h.current -= amount
	if h.current > 0 {
		return false
	}

	h.current = 0
	h.dead = true
	return true
}

// Percentage возвращает долю текущего HP (0.0 - 1.0).
func (h *Health) Percentage() float64 {
	return h.current / h.max
}
