package service

import "time"

// BenchmarkClock вычисляет эффективное время транзакции относительно начала прогона
// бенчмарка. Прошедшее с reference время умножается на scale, что позволяет драйверу
// сжимать "недели торгов" в минуты прогона.
type BenchmarkClock struct {
	scale float64
	now   func() time.Time
}

func NewBenchmarkClock(scale float64) *BenchmarkClock {
	if scale <= 0 {
		scale = 1
	}
	return &BenchmarkClock{
		scale: scale,
		now:   time.Now,
	}
}

// EffectiveTime возвращает время, которым будут проштампованы мутации транзакции.
// Нулевой reference означает вызов вне бенчмарка - берется реальное время без
// масштабирования.
func (c *BenchmarkClock) EffectiveTime(reference time.Time) time.Time {
	current := c.now()
	if reference.IsZero() {
		return current
	}
	elapsed := current.Sub(reference)
	return reference.Add(time.Duration(float64(elapsed) * c.scale))
}
