package helper

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"NaviDemo-App/internal/domain/model"
)

// ToPoint LocationData を orb.Point に変換する（経度, 緯度 の順）
func ToPoint(l *model.LocationData) orb.Point {
	if l == nil {
		return orb.Point{}
	}
	return orb.Point{l.Longitude, l.Latitude}
}

// FromPoint orb.Point を LocationData に変換する
func FromPoint(p orb.Point) model.LocationData {
	return model.LocationData{
		Latitude:  p.Lat(),
		Longitude: p.Lon(),
	}
}

// DistanceMeters 2地点間の距離をメートルで計算する
func DistanceMeters(a, b *model.LocationData) float64 {
	return geo.Distance(ToPoint(a), ToPoint(b))
}

// DegreeDelta 2地点間の緯度経度差（度）をユークリッド距離として計算する
// シミュレーターの散布半径チェックなど、度単位で扱う場面で使用する
func DegreeDelta(a, b *model.LocationData) float64 {
	dLat := a.Latitude - b.Latitude
	dLng := a.Longitude - b.Longitude
	return math.Hypot(dLat, dLng)
}

// OffsetLocation origin から緯度経度それぞれ最大 ±maxDelta 度ずらした地点を生成する
func OffsetLocation(rng *rand.Rand, origin *model.LocationData, maxDelta float64) model.LocationData {
	point := ToPoint(origin)
	offset := orb.Point{
		point.Lon() + (rng.Float64()*2-1)*maxDelta,
		point.Lat() + (rng.Float64()*2-1)*maxDelta,
	}
	return FromPoint(offset)
}

// ScatterWithinRadius origin を中心とした半径 radius 度の円内にランダム配置した地点を生成する
func ScatterWithinRadius(rng *rand.Rand, origin *model.LocationData, radius float64) model.LocationData {
	angle := rng.Float64() * 2 * math.Pi
	distance := rng.Float64() * radius
	point := ToPoint(origin)
	scattered := orb.Point{
		point.Lon() + distance*math.Cos(angle),
		point.Lat() + distance*math.Sin(angle),
	}
	return FromPoint(scattered)
}

// WrapHeading 進行方向を 0〜360 度の範囲に正規化する
func WrapHeading(heading float64) float64 {
	wrapped := math.Mod(heading, 360)
	if wrapped < 0 {
		wrapped += 360
	}
	return wrapped
}
