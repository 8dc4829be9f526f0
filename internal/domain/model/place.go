package model

// LandmarkCategory ランドマーク検索で使用する閉じたカテゴリ分類
type LandmarkCategory string

const (
	CategoryGasStation        LandmarkCategory = "gas_station"
	CategoryATM               LandmarkCategory = "atm"
	CategoryRestaurant        LandmarkCategory = "restaurant"
	CategoryHotel             LandmarkCategory = "hotel"
	CategoryHospital          LandmarkCategory = "hospital"
	CategoryPharmacy          LandmarkCategory = "pharmacy"
	CategoryShopping          LandmarkCategory = "shopping"
	CategoryTouristAttraction LandmarkCategory = "tourist_attraction"
	CategoryParking           LandmarkCategory = "parking"
)

// AllLandmarkCategories 全カテゴリの一覧を取得する
func AllLandmarkCategories() []LandmarkCategory {
	return []LandmarkCategory{
		CategoryGasStation,
		CategoryATM,
		CategoryRestaurant,
		CategoryHotel,
		CategoryHospital,
		CategoryPharmacy,
		CategoryShopping,
		CategoryTouristAttraction,
		CategoryParking,
	}
}

// IsValid 定義済みカテゴリかどうかを判定する
func (c LandmarkCategory) IsValid() bool {
	for _, category := range AllLandmarkCategories() {
		if c == category {
			return true
		}
	}
	return false
}

// PlaceData 検索結果1件分のスポット情報
type PlaceData struct {
	ID          string       `json:"id"`                    // ユニークなスポットID
	Name        string       `json:"name"`                  // スポット名
	Category    string       `json:"category"`              // カテゴリ（自由記述またはLandmarkCategory）
	Location    LocationData `json:"location"`              // 位置情報
	Rating      *float64     `json:"rating,omitempty"`      // 評価値（NULLABLE）
	IsOpen      bool         `json:"is_open"`               // 営業中フラグ
	PriceLevel  int          `json:"price_level,omitempty"` // 価格帯（1〜4）
	Phone       string       `json:"phone,omitempty"`       // 電話番号
	Hours       string       `json:"hours,omitempty"`       // 営業時間
	Description string       `json:"description,omitempty"` // 説明
	Amenities   []string     `json:"amenities,omitempty"`   // 設備・サービス一覧
}

// GetRating 評価値が存在する場合は値を、存在しない場合は0を返す
func (p *PlaceData) GetRating() float64 {
	if p.Rating != nil {
		return *p.Rating
	}
	return 0
}

// SetRating 評価値を設定する
func (p *PlaceData) SetRating(rating float64) {
	p.Rating = &rating
}

// HasRating 評価値が設定されているかチェック
func (p *PlaceData) HasRating() bool {
	return p.Rating != nil
}
