package emoji

import (
	"math"
	"strings"
)

// https://unicode.org/emoji/charts/full-emoji-list.html
const (
	HalfEclipse = "🌓"

	ThirdEclipse = "🌒"
	FullEclipse  = "🌑"
	EclipseFace  = "🌚"
	Comet        = "🪐" // ☄

	FirstEclipse = "🌔"
	FullMoon     = "🌕"
	SunFace      = "🌞"
	Star         = "🌟"

	Zero = "🥜" //🕸
	Down = "🐞" //// 🥀
	Up   = "🦠" //

	DotSnow  = "❄"
	DotFire  = "🔥"
	DotWater = "💧"
)

// MapToSign maps the given float value according to it's sign.
func MapToSign(f float64) string {
	emo := DotSnow
	if f > 0 {
		emo = DotFire
	} else if f < 0 {
		emo = DotWater
	}
	return emo
}

// MapToSentiment maps the given float value according to it's sign.
func MapToSentiment(f float64) string {
	emo := Zero
	if f > 0 {
		emo = Up
	} else if f < 0 {
		emo = Down
	}
	return emo
}

// MapLog10 maps the logarithm of the given number to the emoji as a value.
func MapLog10(value float64) string {
	if value < 0 {
		value = math.Abs(value)
		if value < 0.0001 {
			value = 0.0001
		}
		return MapValue(-1 * (4 - math.Abs(math.Log10(value))))
	}
	if value < 0.0001 {
		value = 0.0001
	}
	return MapValue(4 - math.Abs(math.Log10(value)))
}

// MapDeca maps the decimal order to an emoji
func MapDeca(value float64) string {
	sign := 1.0
	if value < 0 {
		sign = -1
		value = math.Abs(value)
	}

	if value < 0.1 {
		return HalfEclipse
	}

	value *= 10

	d := math.Abs(math.Log10(value))
	return MapValue(sign * d)
}

// MapValue maps the given value to an emoji
// it returns valuable results for values between [-5,5]
func MapValue(value float64) string {
	if value >= 4 {
		return Star
	} else if value >= 3 {
		return SunFace
	} else if value >= 2 {
		return FullMoon
	} else if value >= 1 {
		return FirstEclipse
	} else if value <= -4 {
		return Comet
	} else if value <= -3 {
		return EclipseFace
	} else if value <= -2 {
		return FullEclipse
	} else if value <= -1 {
		return ThirdEclipse
	}
	return HalfEclipse
}

// Progress maps the increments of the given series to their sign.
func Progress(vv []float64) string {
	msgs := new(strings.Builder)
	for i := 1; i < len(vv); i++ {
		msgs.WriteString(MapToSign(vv[i] - vv[i-1]))
	}
	return msgs.String()
}
