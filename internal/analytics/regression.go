package analytics

import "time"

// ordinalOfUnixEpoch é o número ordinal de 1970-01-01 no calendário gregoriano proléptico (0001-01-01 = 1)
const ordinalOfUnixEpoch = 719163

// linearTrend é uma regressão linear simples por mínimos quadrados, guardada na forma centrada
type linearTrend struct {
	meanX float64
	meanY float64
	slope float64
}

func fitLinearTrend(xs, ys []float64) linearTrend {
	n := float64(len(xs))
	if n == 0 {
		return linearTrend{}
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var covariance, variance float64
	for i := range xs {
		dx := xs[i] - meanX
		covariance += dx * (ys[i] - meanY)
		variance += dx * dx
	}

	trend := linearTrend{meanX: meanX, meanY: meanY}
	if variance > 0 {
		trend.slope = covariance / variance
	}

	return trend
}

func (l linearTrend) predict(x float64) float64 {
	return l.meanY + l.slope*(x-l.meanX)
}

// dateOrdinal converte a data (meia-noite UTC) no seu número ordinal de dias
func dateOrdinal(date time.Time) int64 {
	day := startOfDay(date)
	return day.Unix()/86400 + ordinalOfUnixEpoch
}
