package model

// TrafficLevel 経路上の渋滞レベル
type TrafficLevel string

const (
	TrafficLight    TrafficLevel = "light"
	TrafficModerate TrafficLevel = "moderate"
	TrafficHeavy    TrafficLevel = "heavy"
)

// AllTrafficLevels 全渋滞レベルの一覧を取得する
func AllTrafficLevels() []TrafficLevel {
	return []TrafficLevel{TrafficLight, TrafficModerate, TrafficHeavy}
}

// IsValid 定義済みの渋滞レベルかどうかを判定する
func (t TrafficLevel) IsValid() bool {
	return t == TrafficLight || t == TrafficModerate || t == TrafficHeavy
}

// RouteStep ターンバイターン案内の1ステップ。スライス内の順序がそのまま案内順になる
type RouteStep struct {
	Instruction string `json:"instruction"` // 案内文
	Distance    string `json:"distance"`    // このステップの距離
	Duration    string `json:"duration"`    // このステップの所要時間
	Maneuver    string `json:"maneuver"`    // 操作種別（straight, turn-left など）
}

// RouteData 出発地から目的地までの経路情報
type RouteData struct {
	Start        LocationData `json:"start"`
	End          LocationData `json:"end"`
	Polyline     string       `json:"polyline"` // 不透明なパスエンコーディング
	Distance     string       `json:"distance"`
	Duration     string       `json:"duration"`
	TrafficLevel TrafficLevel `json:"traffic_level"`
	Steps        []RouteStep  `json:"steps"`
	Alternatives []*RouteData `json:"alternatives,omitempty"` // 代替経路（省略可）
}

// StepCount 案内ステップ数を取得する
func (r *RouteData) StepCount() int {
	return len(r.Steps)
}
