package model

import "math"

// DamageEvent — входящий удар по NPC. Не сохраняется, обрабатывается синхронно.
type DamageEvent struct {
	Amount float64
	Point  Vec3 // точка попадания
	Normal Vec3 // нормаль поверхности в точке попадания
}

// Applicable reports whether the event carries damage at all.
// Zero, negative and NaN amounts are ignored.
func (e DamageEvent) Applicable() bool {
	return e.Amount > 0 && !math.IsNaN(e.Amount)
}
