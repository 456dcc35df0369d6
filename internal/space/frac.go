package space

import (
	"math"
	"math/big"
	"time"
)

// maxETASeconds — всё, что дольше, показываем как «бесконечность».
const maxETASeconds = 100 * 365 * 24 * 3600.0

// Fraction возвращает done/total как float64 в [0, 1].
// Деление выполняется в big.Float: при total ≫ done наивная конвертация
// в float64 до деления теряла бы точность или переполнялась.
func Fraction(done, total *big.Int) float64 {
	if total.Sign() == 0 {
		// пустое пространство: делать нечего, значит сделано всё
		return 1
	}
	q := new(big.Float).Quo(new(big.Float).SetInt(done), new(big.Float).SetInt(total))
	f, _ := q.Float64()
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// ETA оценивает оставшееся время при скорости rate кандидатов в секунду.
// ok == false означает, что оценка бессмысленна (нулевая скорость или
// астрономический остаток) и её надо показывать как бесконечную.
func ETA(done, total *big.Int, rate float64) (eta time.Duration, ok bool) {
	if rate <= 0 || math.IsNaN(rate) {
		return 0, false
	}
	rem := new(big.Int).Sub(total, done)
	if rem.Sign() <= 0 {
		return 0, true
	}
	remF, _ := new(big.Float).SetInt(rem).Float64()
	secs := remF / rate
	if math.IsInf(secs, 0) || secs > maxETASeconds {
		return 0, false
	}
	return time.Duration(secs * float64(time.Second)), true
}
