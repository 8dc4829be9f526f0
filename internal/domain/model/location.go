package model

// LocationData 現在地や目的地など、1つの地点を表す位置情報モデル
// 値として扱い、更新時はフィールドを書き換えず丸ごと差し替える
type LocationData struct {
	Latitude  float64  `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64  `json:"longitude" validate:"required,min=-180,max=180"`
	Address   string   `json:"address,omitempty"`
	Heading   *float64 `json:"heading,omitempty"`  // 進行方向（度、北=0）
	Speed     *float64 `json:"speed,omitempty"`    // 速度（km/h）
	Accuracy  *float64 `json:"accuracy,omitempty"` // 測位精度（m）
}

// WithAddress 住所だけを差し替えた新しいLocationDataを返す
func (l LocationData) WithAddress(address string) LocationData {
	l.Address = address
	return l
}

// HasGPSMetadata 進行方向・速度・精度のいずれかが付与されているかを判定する
func (l *LocationData) HasGPSMetadata() bool {
	return l.Heading != nil || l.Speed != nil || l.Accuracy != nil
}

// IsValid 緯度経度が有効な範囲内かをチェックする
func (l *LocationData) IsValid() bool {
	if l == nil {
		return false
	}
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}
